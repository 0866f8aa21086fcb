package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"showsync/pkg/storage"
	"showsync/pkg/storage/sqlite/schema/gen/model"
	"showsync/pkg/storage/sqlite/schema/gen/table"
)

// CreateEpisodeMetadata inserts the batch of episode metadata. Rows that
// collide on (show_id, upstream_id) are skipped. Returns the number of rows
// actually inserted.
func (s *SQLite) CreateEpisodeMetadata(ctx context.Context, episodes []model.EpisodeMetadata) (int64, error) {
	if len(episodes) == 0 {
		return 0, nil
	}

	stmt := table.EpisodeMetadata.
		INSERT(table.EpisodeMetadata.MutableColumns).
		MODELS(episodes).
		ON_CONFLICT(table.EpisodeMetadata.ShowID, table.EpisodeMetadata.UpstreamID).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert episode metadata: %w", err)
	}

	return result.RowsAffected()
}

// ListEpisodeMetadata lists a show's episodes in airing order.
func (s *SQLite) ListEpisodeMetadata(ctx context.Context, showID int64) ([]*model.EpisodeMetadata, error) {
	stmt := table.EpisodeMetadata.
		SELECT(table.EpisodeMetadata.AllColumns).
		FROM(table.EpisodeMetadata).
		WHERE(table.EpisodeMetadata.ShowID.EQ(sqlite.Int64(showID))).
		ORDER_BY(
			table.EpisodeMetadata.SeasonNumber.ASC(),
			table.EpisodeMetadata.EpisodeNumber.ASC(),
		)

	episodes := make([]*model.EpisodeMetadata, 0)
	err := stmt.QueryContext(ctx, s.db, &episodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list episode metadata: %w", err)
	}

	return episodes, nil
}

// GetEpisodeMetadata gets an episode metadata for the given where
func (s *SQLite) GetEpisodeMetadata(ctx context.Context, where sqlite.BoolExpression) (*model.EpisodeMetadata, error) {
	stmt := table.EpisodeMetadata.
		SELECT(table.EpisodeMetadata.AllColumns).
		FROM(table.EpisodeMetadata).
		WHERE(where)

	var episode model.EpisodeMetadata
	err := stmt.QueryContext(ctx, s.db, &episode)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get episode metadata: %w", err)
	}

	return &episode, nil
}
