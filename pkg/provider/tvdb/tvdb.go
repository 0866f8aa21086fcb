package tvdb

import (
	"bytes"
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
	// DefaultBaseURL is the TVDB v4 API root.
	DefaultBaseURL = "https://api4.thetvdb.com/v4"
	// artworkBaseURL prefixes legacy relative artwork paths.
	artworkBaseURL = "https://artworks.thetvdb.com"

	// tokens are valid for a month; refresh well before that
	tokenLifetime = 23 * time.Hour

	dateFormat = "2006-01-02"
)

// series artwork type ids from /artwork/types
const (
	artworkTypeBanner int64 = 1
	artworkTypePoster int64 = 2
)

// character type id for actors
const characterTypeActor int64 = 3

// Client is a TVDB v4 metadata provider. The bearer token obtained from
// /login is cached on the client and refreshed before expiry.
type Client struct {
	baseURL string
	apiKey  string
	httpc   showhttp.HTTPClient

	tokenMu     sync.Mutex
	token       string
	tokenExpiry time.Time
}

type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc showhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New creates a TVDB client against the given base URL.
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

func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.token, nil
	}

	body, err := json.Marshal(map[string]string{"apikey": c.apiKey})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: login rejected", provider.ErrAuthFailed)
	}
	if err := provider.FromStatusCode(resp.StatusCode); err != nil {
		return "", err
	}

	var loginResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", err
	}
	if loginResp.Data.Token == "" {
		return "", fmt.Errorf("%w: empty token", provider.ErrAuthFailed)
	}

	c.token = loginResp.Data.Token
	c.tokenExpiry = time.Now().Add(tokenLifetime)
	return c.token, nil
}

func (c *Client) doGET(ctx context.Context, path string, params url.Values, v any) error {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
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

func artworkURL(image string) *string {
	if image == "" {
		return nil
	}
	if !strings.HasPrefix(image, "http") {
		image = artworkBaseURL + image
	}
	return &image
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

type searchResult struct {
	ObjectID string `json:"objectID"`
	TVDBID   string `json:"tvdb_id"`
	Name     string `json:"name"`
	Overview string `json:"overview"`
	Year     string `json:"year"`
	ImageURL string `json:"image_url"`
}

// SearchShows queries /search with type=series. Results without a usable
// series id are skipped.
func (c *Client) SearchShows(ctx context.Context, query string) ([]provider.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("type", "series")

	var resp struct {
		Data []searchResult `json:"data"`
	}
	if err := c.doGET(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	results := make([]provider.SearchResult, 0, len(resp.Data))
	for _, r := range resp.Data {
		id, err := strconv.ParseInt(r.TVDBID, 10, 64)
		if err != nil {
			logger.FromCtx(ctx).Warnw("tvdb search result has no usable id", "objectID", r.ObjectID, "name", r.Name)
			continue
		}
		results = append(results, provider.SearchResult{
			UpstreamID: id,
			Name:       r.Name,
			Overview:   optString(r.Overview),
			PosterURL:  artworkURL(r.ImageURL),
			YearLabel:  r.Year,
		})
	}

	return results, nil
}

type seriesArtwork struct {
	Image string `json:"image"`
	Type  int64  `json:"type"`
}

type seriesSeason struct {
	ID       int64  `json:"id"`
	Number   int32  `json:"number"`
	Name     string `json:"name"`
	Overview string `json:"overview"`
	Image    string `json:"image"`
	Type     struct {
		Type string `json:"type"`
	} `json:"type"`
}

type seriesEpisode struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	SeasonNumber int32  `json:"seasonNumber"`
	Number       int32  `json:"number"`
	Aired        string `json:"aired"`
	Runtime      int32  `json:"runtime"`
	Image        string `json:"image"`
}

type seriesCharacter struct {
	PeopleID   int64  `json:"peopleId"`
	PersonName string `json:"personName"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	Type       int64  `json:"type"`
	Sort       int64  `json:"sort"`
}

type seriesExtended struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Overview       string `json:"overview"`
	FirstAired     string `json:"firstAired"`
	LastAired      string `json:"lastAired"`
	AverageRuntime int32  `json:"averageRuntime"`
	Image          string `json:"image"`
	Score          float64 `json:"score"`
	Status         struct {
		Name string `json:"name"`
	} `json:"status"`
	OriginalNetwork struct {
		Name string `json:"name"`
	} `json:"originalNetwork"`
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Artworks   []seriesArtwork   `json:"artworks"`
	Seasons    []seriesSeason    `json:"seasons"`
	Episodes   []seriesEpisode   `json:"episodes"`
	Characters []seriesCharacter `json:"characters"`
}

func (c *Client) seriesDetail(ctx context.Context, upstreamID int64, meta string) (*seriesExtended, error) {
	var params url.Values
	if meta != "" {
		params = url.Values{}
		params.Set("meta", meta)
	}

	var resp struct {
		Data seriesExtended `json:"data"`
	}
	path := fmt.Sprintf("/series/%d/extended", upstreamID)
	if err := c.doGET(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func pickArtwork(artworks []seriesArtwork, artworkType int64) *string {
	for _, a := range artworks {
		if a.Type == artworkType {
			return artworkURL(a.Image)
		}
	}
	return nil
}

// normalizeStatus folds TVDB's status vocabulary into the canonical one.
func normalizeStatus(status string) *string {
	switch status {
	case "":
		return nil
	case "Continuing", "Upcoming":
		s := "Continuing"
		return &s
	default:
		return &status
	}
}

// GetShowDetail fetches a series and transforms it into the canonical shape.
func (c *Client) GetShowDetail(ctx context.Context, upstreamID int64) (*provider.Show, error) {
	det, err := c.seriesDetail(ctx, upstreamID, "")
	if err != nil {
		return nil, err
	}

	genres := make([]string, 0, len(det.Genres))
	for _, g := range det.Genres {
		if name := provider.NormalizeGenreLabel(g.Name); name != "" {
			genres = append(genres, name)
		}
	}

	var runtime *int32
	if det.AverageRuntime > 0 {
		runtime = &det.AverageRuntime
	}

	var rating *float64
	if det.Score > 0 {
		// TVDB scores run 0-10 scaled by popularity weight; clamp to a
		// 0-10 rating so both providers report the same range.
		score := det.Score
		if score > 10 {
			score = 10
		}
		rating = &score
	}

	poster := pickArtwork(det.Artworks, artworkTypePoster)
	if poster == nil {
		poster = artworkURL(det.Image)
	}

	status := normalizeStatus(det.Status.Name)
	firstAired := parseDate(det.FirstAired)
	lastAired := parseDate(det.LastAired)

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
		Network:    optString(det.OriginalNetwork.Name),
		Runtime:    runtime,
		PosterURL:  poster,
		BannerURL:  pickArtwork(det.Artworks, artworkTypeBanner),
		Rating:     rating,
		Genres:     genres,
		YearLabel:  provider.DeriveYearLabel(firstAired, lastAired, statusLabel),
	}, nil
}

// GetSeasons lists official seasons, excluding specials. Episode counts come
// from the episode listing since season records do not carry them.
func (c *Client) GetSeasons(ctx context.Context, upstreamShowID int64) ([]provider.Season, error) {
	det, err := c.seriesDetail(ctx, upstreamShowID, "episodes")
	if err != nil {
		return nil, err
	}

	counts := make(map[int32]int32, len(det.Seasons))
	firstAirYears := make(map[int32]string, len(det.Seasons))
	for _, e := range det.Episodes {
		counts[e.SeasonNumber]++
		if _, ok := firstAirYears[e.SeasonNumber]; !ok {
			if aired := parseDate(e.Aired); aired != nil {
				firstAirYears[e.SeasonNumber] = strconv.Itoa(aired.Year())
			}
		}
	}

	seasons := make([]provider.Season, 0, len(det.Seasons))
	for _, s := range det.Seasons {
		if s.Number == 0 || s.Type.Type != "official" {
			continue
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Season %d", s.Number)
		}
		seasons = append(seasons, provider.Season{
			UpstreamID:   s.ID,
			Number:       s.Number,
			Name:         name,
			Overview:     optString(s.Overview),
			PosterURL:    artworkURL(s.Image),
			EpisodeCount: counts[s.Number],
			YearLabel:    firstAirYears[s.Number],
		})
	}

	return seasons, nil
}

// GetEpisodes lists episodes for the given seasons from the extended record.
func (c *Client) GetEpisodes(ctx context.Context, upstreamShowID int64, seasons []provider.Season) ([]provider.Episode, error) {
	if len(seasons) == 0 {
		return []provider.Episode{}, nil
	}

	det, err := c.seriesDetail(ctx, upstreamShowID, "episodes")
	if err != nil {
		return nil, err
	}

	wanted := make(map[int32]struct{}, len(seasons))
	for _, s := range seasons {
		wanted[s.Number] = struct{}{}
	}

	episodes := make([]provider.Episode, 0, len(det.Episodes))
	for _, e := range det.Episodes {
		if _, ok := wanted[e.SeasonNumber]; !ok {
			continue
		}
		var runtime *int32
		if e.Runtime > 0 {
			rt := e.Runtime
			runtime = &rt
		}
		episodes = append(episodes, provider.Episode{
			UpstreamID:    e.ID,
			Name:          e.Name,
			Overview:      optString(e.Overview),
			SeasonNumber:  e.SeasonNumber,
			EpisodeNumber: e.Number,
			AirDate:       parseDate(e.Aired),
			Runtime:       runtime,
			StillURL:      artworkURL(e.Image),
		})
	}

	return episodes, nil
}

// GetCast lists actors from the extended record in TVDB sort order, truncated.
func (c *Client) GetCast(ctx context.Context, upstreamShowID int64) ([]provider.CastMember, error) {
	det, err := c.seriesDetail(ctx, upstreamShowID, "")
	if err != nil {
		return nil, err
	}

	members := make([]provider.CastMember, 0, provider.MaxCastMembers)
	for _, ch := range det.Characters {
		if ch.Type != characterTypeActor {
			continue
		}
		members = append(members, provider.CastMember{
			UpstreamPersonID: ch.PeopleID,
			Name:             ch.PersonName,
			CharacterName:    ch.Name,
			ImageURL:         artworkURL(ch.Image),
		})
		if len(members) == provider.MaxCastMembers {
			break
		}
	}

	return members, nil
}

type filteredSeries struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Overview   string `json:"overview"`
	Image      string `json:"image"`
	FirstAired string `json:"firstAired"`
	LastAired  string `json:"lastAired"`
	Status     struct {
		Name string `json:"name"`
	} `json:"status"`
}

func (c *Client) filterSeries(ctx context.Context, sort, sortType string) ([]provider.Show, error) {
	// the filter endpoint requires a country and language pair
	params := url.Values{}
	params.Set("country", "usa")
	params.Set("lang", "eng")
	params.Set("sort", sort)
	if sortType != "" {
		params.Set("sortType", sortType)
	}

	var resp struct {
		Data []filteredSeries `json:"data"`
	}
	if err := c.doGET(ctx, "/series/filter", params, &resp); err != nil {
		return nil, err
	}

	shows := make([]provider.Show, 0, len(resp.Data))
	for _, s := range resp.Data {
		status := normalizeStatus(s.Status.Name)
		firstAired := parseDate(s.FirstAired)
		lastAired := parseDate(s.LastAired)
		statusLabel := ""
		if status != nil {
			statusLabel = *status
		}
		shows = append(shows, provider.Show{
			UpstreamID: s.ID,
			Name:       s.Name,
			Overview:   optString(s.Overview),
			Status:     status,
			FirstAired: firstAired,
			PosterURL:  artworkURL(s.Image),
			Genres:     []string{},
			YearLabel:  provider.DeriveYearLabel(firstAired, lastAired, statusLabel),
		})
	}

	return shows, nil
}

// GetPopularShows fetches series sorted by TVDB score.
func (c *Client) GetPopularShows(ctx context.Context) ([]provider.Show, error) {
	return c.filterSeries(ctx, "score", "")
}

// GetRecentShows fetches the most recently premiered series.
func (c *Client) GetRecentShows(ctx context.Context) ([]provider.Show, error) {
	return c.filterSeries(ctx, "firstAired", "desc")
}

// GetTopRatedShows fetches series sorted by score. TVDB's filter endpoint
// exposes no user-rating sort, so score stands in for both feeds.
func (c *Client) GetTopRatedShows(ctx context.Context) ([]provider.Show, error) {
	return c.filterSeries(ctx, "score", "")
}
