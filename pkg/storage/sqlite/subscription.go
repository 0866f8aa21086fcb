package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	sqlite3driver "github.com/mattn/go-sqlite3"

	"showsync/pkg/storage"
	"showsync/pkg/storage/sqlite/schema/gen/model"
	"showsync/pkg/storage/sqlite/schema/gen/table"
)

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3driver.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3driver.ErrConstraintUnique
}

// CreateSubscription stores a new subscription for the (user, show) pair.
// Returns ErrAlreadyExists when the pair is already tracked.
func (s *SQLite) CreateSubscription(ctx context.Context, sub model.ShowSubscription) (int64, error) {
	insertColumns := table.ShowSubscription.MutableColumns.Except(
		table.ShowSubscription.CreatedAt,
		table.ShowSubscription.UpdatedAt,
	)

	stmt := table.ShowSubscription.
		INSERT(insertColumns).
		MODEL(sub)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrAlreadyExists
		}
		return 0, fmt.Errorf("failed to create subscription: %w", err)
	}

	return result.LastInsertId()
}

// GetSubscription gets the subscription for the (user, show) pair
func (s *SQLite) GetSubscription(ctx context.Context, userID string, showID int64) (*model.ShowSubscription, error) {
	stmt := table.ShowSubscription.
		SELECT(table.ShowSubscription.AllColumns).
		FROM(table.ShowSubscription).
		WHERE(table.ShowSubscription.UserID.EQ(sqlite.String(userID)).
			AND(table.ShowSubscription.ShowID.EQ(sqlite.Int64(showID))))

	var sub model.ShowSubscription
	err := stmt.QueryContext(ctx, s.db, &sub)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// ListSubscriptions lists a user's subscriptions, most recently updated first.
func (s *SQLite) ListSubscriptions(ctx context.Context, userID string, where ...sqlite.BoolExpression) ([]*model.ShowSubscription, error) {
	cond := table.ShowSubscription.UserID.EQ(sqlite.String(userID))
	for _, w := range where {
		cond = cond.AND(w)
	}

	stmt := table.ShowSubscription.
		SELECT(table.ShowSubscription.AllColumns).
		FROM(table.ShowSubscription).
		WHERE(cond).
		ORDER_BY(table.ShowSubscription.UpdatedAt.DESC())

	subs := make([]*model.ShowSubscription, 0)
	err := stmt.QueryContext(ctx, s.db, &subs)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return subs, nil
}

// UpdateSubscription updates the mutable fields of an existing subscription
// and stamps updated_at. Returns ErrNotFound when the pair is not tracked.
func (s *SQLite) UpdateSubscription(ctx context.Context, sub model.ShowSubscription) error {
	now := time.Now()
	sub.UpdatedAt = &now

	stmt := table.ShowSubscription.
		UPDATE(table.ShowSubscription.AllColumns.
			Except(
				table.ShowSubscription.ID,
				table.ShowSubscription.UserID,
				table.ShowSubscription.ShowID,
				table.ShowSubscription.CreatedAt,
			)).
		MODEL(sub).
		WHERE(table.ShowSubscription.UserID.EQ(sqlite.String(sub.UserID)).
			AND(table.ShowSubscription.ShowID.EQ(sqlite.Int32(sub.ShowID))))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteSubscriptionWithWatches removes the subscription and the user's watch
// rows for the show in one transaction. Returns ErrNotFound when the pair is
// not tracked; no watch rows are removed in that case.
func (s *SQLite) DeleteSubscriptionWithWatches(ctx context.Context, userID string, showID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	deleteSubStmt := table.ShowSubscription.
		DELETE().
		WHERE(table.ShowSubscription.UserID.EQ(sqlite.String(userID)).
			AND(table.ShowSubscription.ShowID.EQ(sqlite.Int64(showID))))

	result, err := deleteSubStmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return storage.ErrNotFound
	}

	deleteWatchesStmt := table.EpisodeWatch.
		DELETE().
		WHERE(table.EpisodeWatch.UserID.EQ(sqlite.String(userID)).
			AND(table.EpisodeWatch.ShowID.EQ(sqlite.Int64(showID))))

	_, err = deleteWatchesStmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete episode watches: %w", err)
	}

	return tx.Commit()
}
