package provider

import (
	"context"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_provider_client.go showsync/pkg/provider Client

// MaxCastMembers is the cap applied to cast listings, in provider sort order.
const MaxCastMembers = 12

// Show is the provider-agnostic representation of a series. A Show returned
// from a Client is always fully populated from a single upstream response;
// provider-specific fields never leave the client that produced it.
type Show struct {
	UpstreamID int64      `json:"upstreamId"`
	Name       string     `json:"name"`
	Overview   *string    `json:"overview"`
	Status     *string    `json:"status"`
	FirstAired *time.Time `json:"firstAired"`
	Network    *string    `json:"network"`
	Runtime    *int32     `json:"runtimeMinutes"`
	PosterURL  *string    `json:"posterUrl"`
	BannerURL  *string    `json:"bannerUrl"`
	Rating     *float64   `json:"rating"`
	Genres     []string   `json:"genres"`
	YearLabel  string     `json:"yearLabel"`
}

// Season omits season number 0; specials are not part of normal listings.
type Season struct {
	UpstreamID   int64   `json:"upstreamId"`
	Number       int32   `json:"number"`
	Name         string  `json:"name"`
	Overview     *string `json:"overview"`
	PosterURL    *string `json:"posterUrl"`
	EpisodeCount int32   `json:"episodeCount"`
	YearLabel    string  `json:"yearLabel"`
}

type Episode struct {
	UpstreamID    int64      `json:"upstreamId"`
	Name          string     `json:"name"`
	Overview      *string    `json:"overview"`
	SeasonNumber  int32      `json:"seasonNumber"`
	EpisodeNumber int32      `json:"episodeNumber"`
	AirDate       *time.Time `json:"firstAired"`
	Runtime       *int32     `json:"runtimeMinutes"`
	StillURL      *string    `json:"stillUrl"`
	Rating        *float64   `json:"rating"`
}

type CastMember struct {
	UpstreamPersonID int64   `json:"upstreamPersonId"`
	Name             string  `json:"name"`
	CharacterName    string  `json:"characterName"`
	ImageURL         *string `json:"imageUrl"`
}

// SearchResult is the slim shape returned from show search.
type SearchResult struct {
	UpstreamID int64   `json:"upstreamId"`
	Name       string  `json:"name"`
	Overview   *string `json:"overview"`
	PosterURL  *string `json:"posterUrl"`
	YearLabel  string  `json:"yearLabel"`
}

// Client is a TV metadata provider. Implementations transform their native
// response shapes into the canonical types above.
type Client interface {
	// SearchShows queries the provider. An empty result set is not an error.
	SearchShows(ctx context.Context, query string) ([]SearchResult, error)
	// GetShowDetail fetches a single show. Returns ErrNotFound if the
	// provider has no record of the id.
	GetShowDetail(ctx context.Context, upstreamID int64) (*Show, error)
	// GetSeasons lists a show's seasons, excluding specials (season 0).
	GetSeasons(ctx context.Context, upstreamShowID int64) ([]Season, error)
	// GetEpisodes lists episodes for the given seasons. Episodes are fetched
	// per season; an empty seasons slice yields an empty result with no
	// upstream request.
	GetEpisodes(ctx context.Context, upstreamShowID int64, seasons []Season) ([]Episode, error)
	// GetCast lists up to MaxCastMembers cast members in provider order.
	GetCast(ctx context.Context, upstreamShowID int64) ([]CastMember, error)

	// Curated feeds, used to backfill the local store for discovery queries.
	GetPopularShows(ctx context.Context) ([]Show, error)
	GetRecentShows(ctx context.Context) ([]Show, error)
	GetTopRatedShows(ctx context.Context) ([]Show, error)
}
