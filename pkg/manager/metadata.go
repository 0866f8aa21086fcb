package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/sqlite"

	"showsync/pkg/logger"
	"showsync/pkg/provider"
	"showsync/pkg/storage"
	"showsync/pkg/storage/sqlite/schema/gen/model"
	"showsync/pkg/storage/sqlite/schema/gen/table"
)

// SearchShows queries the upstream provider. Queries shorter than two
// characters are rejected before any upstream call. Results are cached
// in memory per query for the life of the process.
func (m ShowManager) SearchShows(ctx context.Context, query string) ([]provider.SearchResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, fmt.Errorf("%w: query must be at least 2 characters", ErrInvalidInput)
	}

	if results, ok := m.searches.Get(query); ok {
		return results, nil
	}

	results, err := m.provider.SearchShows(ctx, query)
	if err != nil {
		return nil, err
	}

	m.searches.Set(query, results)
	return results, nil
}

// GetShow returns the show for the given upstream id, fetching and storing
// it on a local miss. Concurrent misses settle on one row through the
// upstream id constraint.
func (m ShowManager) GetShow(ctx context.Context, upstreamID int64) (*Show, error) {
	stored, err := m.storage.GetShowMetadata(ctx, table.ShowMetadata.UpstreamID.EQ(sqlite.Int64(upstreamID)))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		stored, err = m.loadShow(ctx, upstreamID)
		if err != nil {
			return nil, err
		}
	}

	show := showFromModel(stored)
	return &show, nil
}

func (m ShowManager) loadShow(ctx context.Context, upstreamID int64) (*model.ShowMetadata, error) {
	det, err := m.provider.GetShowDetail(ctx, upstreamID)
	if err != nil {
		return nil, err
	}

	_, err = m.storage.CreateShowMetadata(ctx, showFromProvider(*det))
	if err != nil {
		return nil, err
	}

	return m.storage.GetShowMetadata(ctx, table.ShowMetadata.UpstreamID.EQ(sqlite.Int64(upstreamID)))
}

// GetSeasons returns the show's seasons, backfilling the store from the
// provider when none are stored yet.
func (m ShowManager) GetSeasons(ctx context.Context, upstreamShowID int64) ([]Season, error) {
	show, err := m.GetShow(ctx, upstreamShowID)
	if err != nil {
		return nil, err
	}

	stored, err := m.storage.ListSeasonMetadata(ctx, show.ID)
	if err != nil {
		return nil, err
	}

	if len(stored) == 0 {
		fetched, err := m.provider.GetSeasons(ctx, upstreamShowID)
		if err != nil {
			return nil, err
		}

		if err := m.storeSeasons(ctx, show.ID, fetched); err != nil {
			return nil, err
		}

		stored, err = m.storage.ListSeasonMetadata(ctx, show.ID)
		if err != nil {
			return nil, err
		}
	}

	seasons := make([]Season, 0, len(stored))
	for _, s := range stored {
		seasons = append(seasons, seasonFromModel(s))
	}

	return seasons, nil
}

// storeSeasons inserts the fetched batch: duplicates within the batch keep
// their first occurrence, rows already stored are diffed out, and the unique
// constraint arbitrates anything that races past the diff.
func (m ShowManager) storeSeasons(ctx context.Context, showID int64, fetched []provider.Season) error {
	stored, err := m.storage.ListSeasonMetadata(ctx, showID)
	if err != nil {
		return err
	}

	existing := make(map[int64]struct{}, len(stored))
	for _, s := range stored {
		existing[s.UpstreamID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(fetched))
	toInsert := make([]model.SeasonMetadata, 0, len(fetched))
	for _, s := range fetched {
		if _, ok := seen[s.UpstreamID]; ok {
			continue
		}
		seen[s.UpstreamID] = struct{}{}
		if _, ok := existing[s.UpstreamID]; ok {
			continue
		}
		toInsert = append(toInsert, model.SeasonMetadata{
			ShowID:       int32(showID),
			UpstreamID:   s.UpstreamID,
			Number:       s.Number,
			Title:        s.Name,
			Overview:     s.Overview,
			PosterURL:    s.PosterURL,
			EpisodeCount: s.EpisodeCount,
			YearLabel:    s.YearLabel,
		})
	}

	_, err = m.storage.CreateSeasonMetadata(ctx, toInsert)
	return err
}

// GetEpisodes returns the show's episodes in airing order, backfilling the
// store from the provider when none are stored yet.
func (m ShowManager) GetEpisodes(ctx context.Context, upstreamShowID int64) ([]Episode, error) {
	show, err := m.GetShow(ctx, upstreamShowID)
	if err != nil {
		return nil, err
	}

	seasons, err := m.GetSeasons(ctx, upstreamShowID)
	if err != nil {
		return nil, err
	}

	stored, err := m.storage.ListEpisodeMetadata(ctx, show.ID)
	if err != nil {
		return nil, err
	}

	if len(stored) == 0 {
		providerSeasons := make([]provider.Season, 0, len(seasons))
		for _, s := range seasons {
			providerSeasons = append(providerSeasons, provider.Season{
				UpstreamID: s.UpstreamID,
				Number:     s.Number,
			})
		}

		fetched, err := m.provider.GetEpisodes(ctx, upstreamShowID, providerSeasons)
		if err != nil {
			return nil, err
		}

		if err := m.storeEpisodes(ctx, show.ID, seasons, fetched); err != nil {
			return nil, err
		}

		stored, err = m.storage.ListEpisodeMetadata(ctx, show.ID)
		if err != nil {
			return nil, err
		}
	}

	episodes := make([]Episode, 0, len(stored))
	for _, e := range stored {
		episodes = append(episodes, episodeFromModel(e))
	}

	return episodes, nil
}

// storeEpisodes inserts the fetched batch after the same two-stage dedup as
// seasons. Episodes resolve their season row through the season number; an
// episode whose season is unknown is dropped with a warning.
func (m ShowManager) storeEpisodes(ctx context.Context, showID int64, seasons []Season, fetched []provider.Episode) error {
	log := logger.FromCtx(ctx)

	seasonIDs := make(map[int32]int64, len(seasons))
	for _, s := range seasons {
		seasonIDs[s.Number] = s.ID
	}

	stored, err := m.storage.ListEpisodeMetadata(ctx, showID)
	if err != nil {
		return err
	}

	existing := make(map[int64]struct{}, len(stored))
	for _, e := range stored {
		existing[e.UpstreamID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(fetched))
	toInsert := make([]model.EpisodeMetadata, 0, len(fetched))
	for _, e := range fetched {
		if _, ok := seen[e.UpstreamID]; ok {
			continue
		}
		seen[e.UpstreamID] = struct{}{}
		if _, ok := existing[e.UpstreamID]; ok {
			continue
		}

		seasonID, ok := seasonIDs[e.SeasonNumber]
		if !ok {
			log.Warnw("dropping episode with unknown season", "upstreamID", e.UpstreamID, "seasonNumber", e.SeasonNumber)
			continue
		}

		toInsert = append(toInsert, model.EpisodeMetadata{
			ShowID:        int32(showID),
			SeasonID:      int32(seasonID),
			UpstreamID:    e.UpstreamID,
			Title:         e.Name,
			Overview:      e.Overview,
			SeasonNumber:  e.SeasonNumber,
			EpisodeNumber: e.EpisodeNumber,
			AirDate:       e.AirDate,
			Runtime:       e.Runtime,
			StillURL:      e.StillURL,
			Rating:        e.Rating,
		})
	}

	_, err = m.storage.CreateEpisodeMetadata(ctx, toInsert)
	return err
}

// GetCast fetches the show's cast from the provider. Cast is a display
// concern and is not persisted.
func (m ShowManager) GetCast(ctx context.Context, upstreamShowID int64) ([]provider.CastMember, error) {
	return m.provider.GetCast(ctx, upstreamShowID)
}
