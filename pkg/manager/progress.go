package manager

import (
	"context"
	"errors"

	"showsync/pkg/storage"
)

// GetShowProgress builds a user's per-season progress for one show from the
// stored episode rows. The show-level fields mirror the persisted
// subscription snapshot.
func (m ShowManager) GetShowProgress(ctx context.Context, userID string, showID int64) (*ShowProgress, error) {
	sub, err := m.storage.GetSubscription(ctx, userID, showID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotTracked
		}
		return nil, err
	}

	episodes, err := m.storage.ListEpisodeMetadata(ctx, showID)
	if err != nil {
		return nil, err
	}

	watches, err := m.storage.ListEpisodeWatches(ctx, userID, showID)
	if err != nil {
		return nil, err
	}

	watched := make(map[int32]struct{}, len(watches))
	for _, w := range watches {
		if w.Status == string(storage.EpisodeWatched) {
			watched[w.EpisodeID] = struct{}{}
		}
	}

	// episodes are listed in season order, so seasons come out ordered too
	var seasons []SeasonProgress
	byNumber := make(map[int32]int, 0)
	for _, e := range episodes {
		idx, ok := byNumber[e.SeasonNumber]
		if !ok {
			idx = len(seasons)
			byNumber[e.SeasonNumber] = idx
			seasons = append(seasons, SeasonProgress{SeasonNumber: e.SeasonNumber})
		}
		seasons[idx].Total++
		if _, ok := watched[e.ID]; ok {
			seasons[idx].Watched++
		}
	}
	if seasons == nil {
		seasons = []SeasonProgress{}
	}

	return &ShowProgress{
		ShowID:        showID,
		Progress:      sub.Progress,
		WatchedCount:  sub.WatchedCount,
		TotalEpisodes: sub.TotalEpisodes,
		LastWatchedAt: sub.LastWatchedAt,
		Seasons:       seasons,
	}, nil
}

// RecomputeShowProgress recalculates the denormalized progress fields on a
// user's subscription from the episode and watch rows and persists them.
// Percent is floored; a show with no episodes reports zero.
func (m ShowManager) RecomputeShowProgress(ctx context.Context, userID string, showID int64) error {
	sub, err := m.storage.GetSubscription(ctx, userID, showID)
	if err != nil {
		return err
	}

	episodes, err := m.storage.ListEpisodeMetadata(ctx, showID)
	if err != nil {
		return err
	}

	agg, err := m.storage.GetWatchAggregate(ctx, userID, showID)
	if err != nil {
		return err
	}

	total := int32(len(episodes))
	sub.TotalEpisodes = total
	sub.WatchedCount = int32(agg.WatchedCount)
	sub.LastWatchedAt = agg.LastWatchedAt
	if total == 0 {
		sub.Progress = 0
	} else {
		sub.Progress = int32(agg.WatchedCount * 100 / int64(total))
	}

	return m.storage.UpdateSubscription(ctx, *sub)
}
