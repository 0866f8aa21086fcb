package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"

	"showsync/pkg/storage"
	"showsync/pkg/storage/sqlite/schema/gen/model"
	"showsync/pkg/storage/sqlite/schema/gen/table"
)

// UpsertEpisodeWatch writes the watch row keyed on (user_id, episode_id).
// The unique constraint arbitrates concurrent writes for the same pair.
func (s *SQLite) UpsertEpisodeWatch(ctx context.Context, watch model.EpisodeWatch) error {
	insertColumns := table.EpisodeWatch.MutableColumns.Except(
		table.EpisodeWatch.CreatedAt,
		table.EpisodeWatch.UpdatedAt,
	)

	stmt := table.EpisodeWatch.
		INSERT(insertColumns).
		MODEL(watch).
		ON_CONFLICT(table.EpisodeWatch.UserID, table.EpisodeWatch.EpisodeID).
		DO_UPDATE(sqlite.SET(
			table.EpisodeWatch.Status.SET(table.EpisodeWatch.EXCLUDED.Status),
			table.EpisodeWatch.WatchedAt.SET(table.EpisodeWatch.EXCLUDED.WatchedAt),
			table.EpisodeWatch.UpdatedAt.SET(sqlite.CURRENT_TIMESTAMP()),
		))

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to upsert episode watch: %w", err)
	}

	return nil
}

// ListEpisodeWatches lists a user's watch rows for one show.
func (s *SQLite) ListEpisodeWatches(ctx context.Context, userID string, showID int64) ([]*model.EpisodeWatch, error) {
	stmt := table.EpisodeWatch.
		SELECT(table.EpisodeWatch.AllColumns).
		FROM(table.EpisodeWatch).
		WHERE(table.EpisodeWatch.UserID.EQ(sqlite.String(userID)).
			AND(table.EpisodeWatch.ShowID.EQ(sqlite.Int64(showID))))

	watches := make([]*model.EpisodeWatch, 0)
	err := stmt.QueryContext(ctx, s.db, &watches)
	if err != nil {
		return nil, fmt.Errorf("failed to list episode watches: %w", err)
	}

	return watches, nil
}

// GetWatchAggregate summarizes a user's watched rows for one show.
func (s *SQLite) GetWatchAggregate(ctx context.Context, userID string, showID int64) (storage.WatchAggregate, error) {
	var agg storage.WatchAggregate

	watches, err := s.ListEpisodeWatches(ctx, userID, showID)
	if err != nil {
		return agg, err
	}

	for _, w := range watches {
		if w.Status != string(storage.EpisodeWatched) {
			continue
		}
		agg.WatchedCount++
		if w.WatchedAt != nil && (agg.LastWatchedAt == nil || w.WatchedAt.After(*agg.LastWatchedAt)) {
			agg.LastWatchedAt = w.WatchedAt
		}
	}

	return agg, nil
}
