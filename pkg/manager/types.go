package manager

import (
	"encoding/json"
	"time"

	"showsync/pkg/provider"
	"showsync/pkg/storage/sqlite/schema/gen/model"
)

// Show is the stored show shape served to callers. ID is the local row id;
// UpstreamID is the provider's id.
type Show struct {
	ID         int64      `json:"id"`
	UpstreamID int64      `json:"upstreamId"`
	Title      string     `json:"title"`
	Overview   *string    `json:"overview,omitempty"`
	Status     *string    `json:"status,omitempty"`
	FirstAired *time.Time `json:"firstAired,omitempty"`
	Network    *string    `json:"network,omitempty"`
	Runtime    *int32     `json:"runtimeMinutes,omitempty"`
	PosterURL  *string    `json:"posterUrl,omitempty"`
	BannerURL  *string    `json:"bannerUrl,omitempty"`
	Rating     *float64   `json:"rating,omitempty"`
	Genres     []string   `json:"genres"`
	YearLabel  string     `json:"yearLabel"`
}

type Season struct {
	ID           int64   `json:"id"`
	UpstreamID   int64   `json:"upstreamId"`
	Number       int32   `json:"number"`
	Title        string  `json:"title"`
	Overview     *string `json:"overview,omitempty"`
	PosterURL    *string `json:"posterUrl,omitempty"`
	EpisodeCount int32   `json:"episodeCount"`
	YearLabel    string  `json:"yearLabel"`
}

type Episode struct {
	ID            int64      `json:"id"`
	UpstreamID    int64      `json:"upstreamId"`
	Title         string     `json:"title"`
	Overview      *string    `json:"overview,omitempty"`
	SeasonNumber  int32      `json:"seasonNumber"`
	EpisodeNumber int32      `json:"episodeNumber"`
	AirDate       *time.Time `json:"firstAired,omitempty"`
	Runtime       *int32     `json:"runtimeMinutes,omitempty"`
	StillURL      *string    `json:"stillUrl,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
}

// Subscription is a user's tracked show with the denormalized progress
// fields maintained by the progress recompute.
type Subscription struct {
	ShowID        int64      `json:"showId"`
	UserID        string     `json:"userId"`
	Status        string     `json:"status"`
	Favorite      bool       `json:"favorite"`
	Progress      int32      `json:"progress"`
	WatchedCount  int32      `json:"watchedCount"`
	TotalEpisodes int32      `json:"totalEpisodes"`
	LastWatchedAt *time.Time `json:"lastWatchedAt,omitempty"`
}

// SeasonProgress is the watched/total pair for one season.
type SeasonProgress struct {
	SeasonNumber int32 `json:"seasonNumber"`
	Watched      int32 `json:"watched"`
	Total        int32 `json:"total"`
}

// ShowProgress is the per-show progress summary for one user.
type ShowProgress struct {
	ShowID        int64            `json:"showId"`
	Progress      int32            `json:"progress"`
	WatchedCount  int32            `json:"watchedCount"`
	TotalEpisodes int32            `json:"totalEpisodes"`
	LastWatchedAt *time.Time       `json:"lastWatchedAt,omitempty"`
	Seasons       []SeasonProgress `json:"seasons"`
}

func showFromProvider(p provider.Show) model.ShowMetadata {
	genres, err := json.Marshal(p.Genres)
	if err != nil || p.Genres == nil {
		genres = []byte("[]")
	}

	return model.ShowMetadata{
		UpstreamID: p.UpstreamID,
		Title:      p.Name,
		Overview:   p.Overview,
		Status:     p.Status,
		FirstAired: p.FirstAired,
		Network:    p.Network,
		Runtime:    p.Runtime,
		PosterURL:  p.PosterURL,
		BannerURL:  p.BannerURL,
		Rating:     p.Rating,
		Genres:     string(genres),
		YearLabel:  p.YearLabel,
	}
}

func showFromModel(m *model.ShowMetadata) Show {
	var genres []string
	if err := json.Unmarshal([]byte(m.Genres), &genres); err != nil || genres == nil {
		genres = []string{}
	}

	return Show{
		ID:         int64(m.ID),
		UpstreamID: m.UpstreamID,
		Title:      m.Title,
		Overview:   m.Overview,
		Status:     m.Status,
		FirstAired: m.FirstAired,
		Network:    m.Network,
		Runtime:    m.Runtime,
		PosterURL:  m.PosterURL,
		BannerURL:  m.BannerURL,
		Rating:     m.Rating,
		Genres:     genres,
		YearLabel:  m.YearLabel,
	}
}

func seasonFromModel(m *model.SeasonMetadata) Season {
	return Season{
		ID:           int64(m.ID),
		UpstreamID:   m.UpstreamID,
		Number:       m.Number,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterURL:    m.PosterURL,
		EpisodeCount: m.EpisodeCount,
		YearLabel:    m.YearLabel,
	}
}

func episodeFromModel(m *model.EpisodeMetadata) Episode {
	return Episode{
		ID:            int64(m.ID),
		UpstreamID:    m.UpstreamID,
		Title:         m.Title,
		Overview:      m.Overview,
		SeasonNumber:  m.SeasonNumber,
		EpisodeNumber: m.EpisodeNumber,
		AirDate:       m.AirDate,
		Runtime:       m.Runtime,
		StillURL:      m.StillURL,
		Rating:        m.Rating,
	}
}

func subscriptionFromModel(m *model.ShowSubscription) Subscription {
	return Subscription{
		ShowID:        int64(m.ShowID),
		UserID:        m.UserID,
		Status:        m.Status,
		Favorite:      m.Favorite,
		Progress:      m.Progress,
		WatchedCount:  m.WatchedCount,
		TotalEpisodes: m.TotalEpisodes,
		LastWatchedAt: m.LastWatchedAt,
	}
}
