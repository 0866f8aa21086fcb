package sqlite

import (
	"context"
	"fmt"

	"showsync/pkg/storage/sqlite/schema/gen/model"
	"showsync/pkg/storage/sqlite/schema/gen/table"

	"github.com/go-jet/jet/v2/sqlite"
)

// CreateSeasonMetadata inserts the batch of season metadata. Rows that
// collide on (show_id, upstream_id) are skipped; the constraint is the final
// arbiter so overlapping backfills stay non-fatal. Returns the number of
// rows actually inserted.
func (s *SQLite) CreateSeasonMetadata(ctx context.Context, seasons []model.SeasonMetadata) (int64, error) {
	if len(seasons) == 0 {
		return 0, nil
	}

	stmt := table.SeasonMetadata.
		INSERT(table.SeasonMetadata.MutableColumns).
		MODELS(seasons).
		ON_CONFLICT(table.SeasonMetadata.ShowID, table.SeasonMetadata.UpstreamID).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert season metadata: %w", err)
	}

	return result.RowsAffected()
}

// ListSeasonMetadata lists a show's seasons ordered by season number.
func (s *SQLite) ListSeasonMetadata(ctx context.Context, showID int64) ([]*model.SeasonMetadata, error) {
	stmt := table.SeasonMetadata.
		SELECT(table.SeasonMetadata.AllColumns).
		FROM(table.SeasonMetadata).
		WHERE(table.SeasonMetadata.ShowID.EQ(sqlite.Int64(showID))).
		ORDER_BY(table.SeasonMetadata.Number.ASC())

	seasons := make([]*model.SeasonMetadata, 0)
	err := stmt.QueryContext(ctx, s.db, &seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to list season metadata: %w", err)
	}

	return seasons, nil
}
