package manager

import (
	"context"
	"encoding/json"
	"sort"

	"showsync/pkg/logger"
	"showsync/pkg/provider"
	"showsync/pkg/storage"
	"showsync/pkg/storage/sqlite/schema/gen/model"
)

// DiscoverFilter narrows curated listings.
type DiscoverFilter struct {
	Genre string
	Limit int64
}

func (f DiscoverFilter) storageFilter() storage.ShowFilter {
	return storage.ShowFilter{Genre: f.Genre, Limit: f.Limit}
}

type curatedQuery func(context.Context, storage.ShowFilter) ([]*model.ShowMetadata, error)
type curatedFeed func(context.Context) ([]provider.Show, error)

// getCurated serves a curated listing from the local store, backfilling from
// the provider feed the first time the store comes up empty. Entries that
// fail to persist are skipped so partial feeds still serve.
func (m ShowManager) getCurated(ctx context.Context, filter DiscoverFilter, query curatedQuery, feed curatedFeed) ([]Show, error) {
	log := logger.FromCtx(ctx)

	stored, err := query(ctx, filter.storageFilter())
	if err != nil {
		return nil, err
	}

	if len(stored) == 0 {
		fetched, err := feed(ctx)
		if err != nil {
			return nil, err
		}

		for _, show := range fetched {
			if _, err := m.storage.CreateShowMetadata(ctx, showFromProvider(show)); err != nil {
				log.Warnw("failed to store curated show", "upstreamID", show.UpstreamID, "err", err)
			}
		}

		stored, err = query(ctx, filter.storageFilter())
		if err != nil {
			return nil, err
		}
	}

	shows := make([]Show, 0, len(stored))
	for _, s := range stored {
		shows = append(shows, showFromModel(s))
	}

	return shows, nil
}

// GetPopularShows lists shows by rating, backfilled from the provider's
// popular feed.
func (m ShowManager) GetPopularShows(ctx context.Context, filter DiscoverFilter) ([]Show, error) {
	return m.getCurated(ctx, filter, m.storage.ListPopularShows, m.provider.GetPopularShows)
}

// GetRecentShows lists shows by premiere date, backfilled from the
// provider's currently-airing feed.
func (m ShowManager) GetRecentShows(ctx context.Context, filter DiscoverFilter) ([]Show, error) {
	return m.getCurated(ctx, filter, m.storage.ListRecentShows, m.provider.GetRecentShows)
}

// GetTopRatedShows lists rated shows by rating, backfilled from the
// provider's top-rated feed.
func (m ShowManager) GetTopRatedShows(ctx context.Context, filter DiscoverFilter) ([]Show, error) {
	return m.getCurated(ctx, filter, m.storage.ListTopRatedShows, m.provider.GetTopRatedShows)
}

// GetAllGenres returns the distinct genres across stored shows, sorted.
func (m ShowManager) GetAllGenres(ctx context.Context) ([]string, error) {
	values, err := m.storage.ListGenreValues(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, v := range values {
		var parsed []string
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			continue
		}
		for _, g := range parsed {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			genres = append(genres, g)
		}
	}

	sort.Strings(genres)
	return genres, nil
}
