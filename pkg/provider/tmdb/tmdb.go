package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	showhttp "showsync/pkg/http"
	"showsync/pkg/logger"
	"showsync/pkg/provider"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// defaultImageBaseURL is used when the /configuration fetch fails;
	// image delivery degrades rather than failing the calling operation.
	defaultImageBaseURL = "https://image.tmdb.org/t/p"

	posterSize   = "w500"
	backdropSize = "w1280"
	stillSize    = "w300"
	profileSize  = "w185"

	dateFormat = "2006-01-02"
)

// Client is a TMDB-backed metadata provider. It holds the process-wide image
// base URL cache; construct one per process and share it.
type Client struct {
	baseURL string
	apiKey  string
	httpc   showhttp.HTTPClient

	imageMu   sync.Mutex
	imageBase string
}

type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc showhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New creates a TMDB client against the given base URL.
func New(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   showhttp.NewRetryingClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) doGET(ctx context.Context, path string, params url.Values, v any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := provider.FromStatusCode(resp.StatusCode); err != nil {
		return err
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

type configurationResponse struct {
	Images struct {
		SecureBaseURL string `json:"secure_base_url"`
	} `json:"images"`
}

// imageBaseURL returns the configured image base, fetching /configuration on
// first use. A fetch failure falls back to the hard-coded default.
func (c *Client) imageBaseURL(ctx context.Context) string {
	c.imageMu.Lock()
	defer c.imageMu.Unlock()

	if c.imageBase != "" {
		return c.imageBase
	}

	var cfg configurationResponse
	if err := c.doGET(ctx, "/configuration", nil, &cfg); err != nil {
		// fall back for this call only so the next one retries the fetch
		logger.FromCtx(ctx).Warnw("tmdb configuration fetch failed, using default image base", "err", err)
		return defaultImageBaseURL
	}

	base := cfg.Images.SecureBaseURL
	if base == "" {
		base = defaultImageBaseURL
	}
	// strip any trailing slash so joining with "/size/path" stays uniform
	c.imageBase = strings.TrimSuffix(base, "/")
	return c.imageBase
}

func (c *Client) imageURL(ctx context.Context, path, size string) *string {
	if path == "" {
		return nil
	}
	u := c.imageBaseURL(ctx) + "/" + size + path
	return &u
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return nil
	}
	return &t
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optFloat(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

type searchResponse struct {
	Results []listedShow `json:"results"`
}

type listedShow struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int64 `json:"genre_ids"`
}

// SearchShows queries /search/tv. An empty result field yields an empty slice.
func (c *Client) SearchShows(ctx context.Context, query string) ([]provider.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp searchResponse
	if err := c.doGET(ctx, "/search/tv", params, &resp); err != nil {
		return nil, err
	}

	results := make([]provider.SearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		yearLabel := ""
		if aired := parseDate(r.FirstAirDate); aired != nil {
			yearLabel = strconv.Itoa(aired.Year())
		}
		results = append(results, provider.SearchResult{
			UpstreamID: r.ID,
			Name:       r.Name,
			Overview:   optString(r.Overview),
			PosterURL:  c.imageURL(ctx, r.PosterPath, posterSize),
			YearLabel:  yearLabel,
		})
	}

	return results, nil
}

type showDetailResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	Status       string `json:"status"`
	FirstAirDate string `json:"first_air_date"`
	LastAirDate  string `json:"last_air_date"`
	Networks     []struct {
		Name string `json:"name"`
	} `json:"networks"`
	EpisodeRunTime []int32 `json:"episode_run_time"`
	PosterPath     string  `json:"poster_path"`
	BackdropPath   string  `json:"backdrop_path"`
	VoteAverage    float64 `json:"vote_average"`
	Genres         []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
	Seasons []seasonSummary `json:"seasons"`
}

type seasonSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	PosterPath   string `json:"poster_path"`
	SeasonNumber int32  `json:"season_number"`
	EpisodeCount int32  `json:"episode_count"`
	AirDate      string `json:"air_date"`
}

// normalizeStatus folds TMDB's status vocabulary into the canonical one.
func normalizeStatus(status string) *string {
	switch status {
	case "":
		return nil
	case "Returning Series", "In Production":
		s := "Continuing"
		return &s
	default:
		return &status
	}
}

func (c *Client) showDetail(ctx context.Context, upstreamID int64) (*showDetailResponse, error) {
	var resp showDetailResponse
	path := fmt.Sprintf("/tv/%d", upstreamID)
	if err := c.doGET(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetShowDetail fetches a show and transforms it into the canonical shape.
func (c *Client) GetShowDetail(ctx context.Context, upstreamID int64) (*provider.Show, error) {
	det, err := c.showDetail(ctx, upstreamID)
	if err != nil {
		return nil, err
	}

	genres := make([]string, 0, len(det.Genres))
	for _, g := range det.Genres {
		if name := provider.GenreName(g.ID, g.Name); name != "" {
			genres = append(genres, name)
		}
	}

	var network *string
	if len(det.Networks) > 0 {
		network = optString(det.Networks[0].Name)
	}

	var runtime *int32
	if len(det.EpisodeRunTime) > 0 {
		runtime = &det.EpisodeRunTime[0]
	}

	status := normalizeStatus(det.Status)
	firstAired := parseDate(det.FirstAirDate)
	lastAired := parseDate(det.LastAirDate)

	statusLabel := ""
	if status != nil {
		statusLabel = *status
	}

	return &provider.Show{
		UpstreamID: det.ID,
		Name:       det.Name,
		Overview:   optString(det.Overview),
		Status:     status,
		FirstAired: firstAired,
		Network:    network,
		Runtime:    runtime,
		PosterURL:  c.imageURL(ctx, det.PosterPath, posterSize),
		BannerURL:  c.imageURL(ctx, det.BackdropPath, backdropSize),
		Rating:     optFloat(det.VoteAverage),
		Genres:     genres,
		YearLabel:  provider.DeriveYearLabel(firstAired, lastAired, statusLabel),
	}, nil
}

// GetSeasons lists a show's seasons from the detail response, excluding specials.
func (c *Client) GetSeasons(ctx context.Context, upstreamShowID int64) ([]provider.Season, error) {
	det, err := c.showDetail(ctx, upstreamShowID)
	if err != nil {
		return nil, err
	}

	seasons := make([]provider.Season, 0, len(det.Seasons))
	for _, s := range det.Seasons {
		if s.SeasonNumber == 0 {
			continue
		}
		yearLabel := ""
		if aired := parseDate(s.AirDate); aired != nil {
			yearLabel = strconv.Itoa(aired.Year())
		}
		seasons = append(seasons, provider.Season{
			UpstreamID:   s.ID,
			Number:       s.SeasonNumber,
			Name:         s.Name,
			Overview:     optString(s.Overview),
			PosterURL:    c.imageURL(ctx, s.PosterPath, posterSize),
			EpisodeCount: s.EpisodeCount,
			YearLabel:    yearLabel,
		})
	}

	return seasons, nil
}

type seasonDetailResponse struct {
	Episodes []struct {
		ID            int64   `json:"id"`
		Name          string  `json:"name"`
		Overview      string  `json:"overview"`
		SeasonNumber  int32   `json:"season_number"`
		EpisodeNumber int32   `json:"episode_number"`
		AirDate       string  `json:"air_date"`
		Runtime       *int32  `json:"runtime"`
		StillPath     string  `json:"still_path"`
		VoteAverage   float64 `json:"vote_average"`
	} `json:"episodes"`
}

// GetEpisodes fetches episode detail one season at a time and merges.
func (c *Client) GetEpisodes(ctx context.Context, upstreamShowID int64, seasons []provider.Season) ([]provider.Episode, error) {
	if len(seasons) == 0 {
		return []provider.Episode{}, nil
	}

	episodes := make([]provider.Episode, 0, len(seasons)*10)
	for _, season := range seasons {
		var resp seasonDetailResponse
		path := fmt.Sprintf("/tv/%d/season/%d", upstreamShowID, season.Number)
		if err := c.doGET(ctx, path, nil, &resp); err != nil {
			return nil, err
		}

		for _, e := range resp.Episodes {
			episodes = append(episodes, provider.Episode{
				UpstreamID:    e.ID,
				Name:          e.Name,
				Overview:      optString(e.Overview),
				SeasonNumber:  e.SeasonNumber,
				EpisodeNumber: e.EpisodeNumber,
				AirDate:       parseDate(e.AirDate),
				Runtime:       e.Runtime,
				StillURL:      c.imageURL(ctx, e.StillPath, stillSize),
				Rating:        optFloat(e.VoteAverage),
			})
		}
	}

	return episodes, nil
}

type creditsResponse struct {
	Cast []struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Character   string `json:"character"`
		ProfilePath string `json:"profile_path"`
	} `json:"cast"`
}

// GetCast lists the show's cast in TMDB order, truncated.
func (c *Client) GetCast(ctx context.Context, upstreamShowID int64) ([]provider.CastMember, error) {
	var resp creditsResponse
	path := fmt.Sprintf("/tv/%d/credits", upstreamShowID)
	if err := c.doGET(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	cast := resp.Cast
	if len(cast) > provider.MaxCastMembers {
		cast = cast[:provider.MaxCastMembers]
	}

	members := make([]provider.CastMember, 0, len(cast))
	for _, m := range cast {
		members = append(members, provider.CastMember{
			UpstreamPersonID: m.ID,
			Name:             m.Name,
			CharacterName:    m.Character,
			ImageURL:         c.imageURL(ctx, m.ProfilePath, profileSize),
		})
	}

	return members, nil
}

func (c *Client) curatedFeed(ctx context.Context, path string) ([]provider.Show, error) {
	var resp searchResponse
	if err := c.doGET(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	shows := make([]provider.Show, 0, len(resp.Results))
	for _, r := range resp.Results {
		genres := make([]string, 0, len(r.GenreIDs))
		for _, id := range r.GenreIDs {
			if name := provider.GenreName(id, ""); name != "" {
				genres = append(genres, name)
			}
		}
		firstAired := parseDate(r.FirstAirDate)
		shows = append(shows, provider.Show{
			UpstreamID: r.ID,
			Name:       r.Name,
			Overview:   optString(r.Overview),
			FirstAired: firstAired,
			PosterURL:  c.imageURL(ctx, r.PosterPath, posterSize),
			BannerURL:  c.imageURL(ctx, r.BackdropPath, backdropSize),
			Rating:     optFloat(r.VoteAverage),
			Genres:     genres,
			YearLabel:  provider.DeriveYearLabel(firstAired, nil, ""),
		})
	}

	return shows, nil
}

// GetPopularShows fetches TMDB's popular TV feed.
func (c *Client) GetPopularShows(ctx context.Context) ([]provider.Show, error) {
	return c.curatedFeed(ctx, "/tv/popular")
}

// GetRecentShows fetches currently-airing shows.
func (c *Client) GetRecentShows(ctx context.Context) ([]provider.Show, error) {
	return c.curatedFeed(ctx, "/tv/on_the_air")
}

// GetTopRatedShows fetches TMDB's top-rated TV feed.
func (c *Client) GetTopRatedShows(ctx context.Context) ([]provider.Show, error) {
	return c.curatedFeed(ctx, "/tv/top_rated")
}
