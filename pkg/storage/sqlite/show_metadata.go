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

// CreateShowMetadata upserts the given show metadata keyed on upstream_id.
// The unique constraint arbitrates concurrent creates; the surviving row id
// is returned either way.
func (s *SQLite) CreateShowMetadata(ctx context.Context, show model.ShowMetadata) (int64, error) {
	insertColumns := table.ShowMetadata.MutableColumns.Except(
		table.ShowMetadata.CreatedAt,
		table.ShowMetadata.UpdatedAt,
	)

	stmt := table.ShowMetadata.
		INSERT(insertColumns).
		MODEL(show).
		ON_CONFLICT(table.ShowMetadata.UpstreamID).
		DO_UPDATE(sqlite.SET(
			table.ShowMetadata.Title.SET(table.ShowMetadata.EXCLUDED.Title),
			table.ShowMetadata.Overview.SET(table.ShowMetadata.EXCLUDED.Overview),
			table.ShowMetadata.Status.SET(table.ShowMetadata.EXCLUDED.Status),
			table.ShowMetadata.FirstAired.SET(table.ShowMetadata.EXCLUDED.FirstAired),
			table.ShowMetadata.Network.SET(table.ShowMetadata.EXCLUDED.Network),
			table.ShowMetadata.Runtime.SET(table.ShowMetadata.EXCLUDED.Runtime),
			table.ShowMetadata.PosterURL.SET(table.ShowMetadata.EXCLUDED.PosterURL),
			table.ShowMetadata.BannerURL.SET(table.ShowMetadata.EXCLUDED.BannerURL),
			table.ShowMetadata.Rating.SET(table.ShowMetadata.EXCLUDED.Rating),
			table.ShowMetadata.Genres.SET(table.ShowMetadata.EXCLUDED.Genres),
			table.ShowMetadata.YearLabel.SET(table.ShowMetadata.EXCLUDED.YearLabel),
			table.ShowMetadata.UpdatedAt.SET(sqlite.CURRENT_TIMESTAMP()),
		))

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert show metadata: %w", err)
	}

	var existing model.ShowMetadata
	getStmt := table.ShowMetadata.
		SELECT(table.ShowMetadata.ID).
		FROM(table.ShowMetadata).
		WHERE(table.ShowMetadata.UpstreamID.EQ(sqlite.Int64(show.UpstreamID)))

	err = getStmt.QueryContext(ctx, s.db, &existing)
	if err != nil {
		return 0, fmt.Errorf("failed to get show metadata ID after upsert: %w", err)
	}

	return int64(existing.ID), nil
}

// GetShowMetadata gets a show metadata for the given where
func (s *SQLite) GetShowMetadata(ctx context.Context, where sqlite.BoolExpression) (*model.ShowMetadata, error) {
	stmt := table.ShowMetadata.
		SELECT(table.ShowMetadata.AllColumns).
		FROM(table.ShowMetadata).
		WHERE(where)

	var show model.ShowMetadata
	err := stmt.QueryContext(ctx, s.db, &show)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get show metadata: %w", err)
	}

	return &show, nil
}

// ListShowMetadata lists stored show metadata
func (s *SQLite) ListShowMetadata(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.ShowMetadata, error) {
	stmt := table.ShowMetadata.
		SELECT(table.ShowMetadata.AllColumns).
		FROM(table.ShowMetadata)

	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	shows := make([]*model.ShowMetadata, 0)
	err := stmt.QueryContext(ctx, s.db, &shows)
	if err != nil {
		return nil, fmt.Errorf("failed to list show metadata: %w", err)
	}

	return shows, nil
}

// DeleteShowMetadata deletes a show metadata by id
func (s *SQLite) DeleteShowMetadata(ctx context.Context, id int64) error {
	stmt := table.ShowMetadata.
		DELETE().
		WHERE(table.ShowMetadata.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete show metadata: %w", err)
	}

	return nil
}

// genreExpression matches shows whose genres JSON array contains the genre.
func genreExpression(genre string) sqlite.BoolExpression {
	return table.ShowMetadata.Genres.LIKE(sqlite.String(`%"` + genre + `"%`))
}

func (s *SQLite) listShows(ctx context.Context, filter storage.ShowFilter, where sqlite.BoolExpression, orderBy ...sqlite.OrderByClause) ([]*model.ShowMetadata, error) {
	if filter.Genre != "" {
		where = where.AND(genreExpression(filter.Genre))
	}

	stmt := table.ShowMetadata.
		SELECT(table.ShowMetadata.AllColumns).
		FROM(table.ShowMetadata).
		WHERE(where).
		ORDER_BY(orderBy...)

	if filter.Limit > 0 {
		stmt = stmt.LIMIT(filter.Limit)
	}

	shows := make([]*model.ShowMetadata, 0)
	err := stmt.QueryContext(ctx, s.db, &shows)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	return shows, nil
}

// ListPopularShows lists stored shows by rating, best first.
func (s *SQLite) ListPopularShows(ctx context.Context, filter storage.ShowFilter) ([]*model.ShowMetadata, error) {
	return s.listShows(ctx, filter, sqlite.Bool(true), table.ShowMetadata.Rating.DESC())
}

// ListRecentShows lists stored shows by premiere date, newest first.
func (s *SQLite) ListRecentShows(ctx context.Context, filter storage.ShowFilter) ([]*model.ShowMetadata, error) {
	return s.listShows(ctx, filter,
		table.ShowMetadata.FirstAired.IS_NOT_NULL(),
		table.ShowMetadata.FirstAired.DESC())
}

// ListTopRatedShows lists rated shows by rating, best first.
func (s *SQLite) ListTopRatedShows(ctx context.Context, filter storage.ShowFilter) ([]*model.ShowMetadata, error) {
	return s.listShows(ctx, filter,
		table.ShowMetadata.Rating.IS_NOT_NULL(),
		table.ShowMetadata.Rating.DESC())
}

// ListGenreValues returns the raw genres column of every stored show.
func (s *SQLite) ListGenreValues(ctx context.Context) ([]string, error) {
	stmt := table.ShowMetadata.
		SELECT(table.ShowMetadata.Genres).
		FROM(table.ShowMetadata)

	rows := make([]*model.ShowMetadata, 0)
	err := stmt.QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list genre values: %w", err)
	}

	values := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Genres)
	}

	return values, nil
}
