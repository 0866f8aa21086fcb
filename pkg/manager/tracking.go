package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"

	"showsync/pkg/logger"
	"showsync/pkg/storage"
	"showsync/pkg/storage/sqlite/schema/gen/model"
	"showsync/pkg/storage/sqlite/schema/gen/table"
)

// Track subscribes a user to a stored show. The episode total is snapshotted
// at track time; watch writes keep it current afterwards.
func (m ShowManager) Track(ctx context.Context, userID string, showID int64) (*Subscription, error) {
	if _, err := m.storage.GetShowMetadata(ctx, table.ShowMetadata.ID.EQ(sqlite.Int64(showID))); err != nil {
		return nil, err
	}

	episodes, err := m.storage.ListEpisodeMetadata(ctx, showID)
	if err != nil {
		return nil, err
	}

	sub := model.ShowSubscription{
		UserID:        userID,
		ShowID:        int32(showID),
		Status:        string(storage.WatchStatusWatching),
		TotalEpisodes: int32(len(episodes)),
	}

	_, err = m.storage.CreateSubscription(ctx, sub)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrAlreadyTracked
		}
		return nil, err
	}

	stored, err := m.storage.GetSubscription(ctx, userID, showID)
	if err != nil {
		return nil, err
	}

	result := subscriptionFromModel(stored)
	return &result, nil
}

// Untrack removes the subscription along with the user's watch history for
// the show.
func (m ShowManager) Untrack(ctx context.Context, userID string, showID int64) error {
	err := m.storage.DeleteSubscriptionWithWatches(ctx, userID, showID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotTracked
	}
	return err
}

// SubscriptionPatch carries the mutable subscription fields; nil fields are
// left unchanged.
type SubscriptionPatch struct {
	Status   *string `json:"status,omitempty"`
	Favorite *bool   `json:"favorite,omitempty"`
}

// UpdateSubscription patches a tracked show's status and favorite flag.
func (m ShowManager) UpdateSubscription(ctx context.Context, userID string, showID int64, patch SubscriptionPatch) (*Subscription, error) {
	sub, err := m.storage.GetSubscription(ctx, userID, showID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotTracked
		}
		return nil, err
	}

	if patch.Status != nil {
		if !storage.WatchStatus(*patch.Status).Valid() {
			return nil, fmt.Errorf("%w: unknown watch status %q", ErrInvalidInput, *patch.Status)
		}
		sub.Status = *patch.Status
	}
	if patch.Favorite != nil {
		sub.Favorite = *patch.Favorite
	}

	if err := m.storage.UpdateSubscription(ctx, *sub); err != nil {
		return nil, err
	}

	updated, err := m.storage.GetSubscription(ctx, userID, showID)
	if err != nil {
		return nil, err
	}

	result := subscriptionFromModel(updated)
	return &result, nil
}

// ListSubscriptions lists a user's tracked shows, optionally narrowed to one
// watch status.
func (m ShowManager) ListSubscriptions(ctx context.Context, userID string, status string) ([]Subscription, error) {
	var where []sqlite.BoolExpression
	if status != "" {
		if !storage.WatchStatus(status).Valid() {
			return nil, fmt.Errorf("%w: unknown watch status %q", ErrInvalidInput, status)
		}
		where = append(where, table.ShowSubscription.Status.EQ(sqlite.String(status)))
	}

	stored, err := m.storage.ListSubscriptions(ctx, userID, where...)
	if err != nil {
		return nil, err
	}

	subs := make([]Subscription, 0, len(stored))
	for _, s := range stored {
		subs = append(subs, subscriptionFromModel(s))
	}

	return subs, nil
}

// ListFavorites lists a user's favorite tracked shows.
func (m ShowManager) ListFavorites(ctx context.Context, userID string) ([]Subscription, error) {
	stored, err := m.storage.ListSubscriptions(ctx, userID, table.ShowSubscription.Favorite.IS_TRUE())
	if err != nil {
		return nil, err
	}

	subs := make([]Subscription, 0, len(stored))
	for _, s := range stored {
		subs = append(subs, subscriptionFromModel(s))
	}

	return subs, nil
}

// SetEpisodeWatchStatus records a watch state for one episode and then
// recomputes the show's progress. The watch write is committed first: a
// recompute failure is reported but never rolls it back.
func (m ShowManager) SetEpisodeWatchStatus(ctx context.Context, userID string, episodeID int64, status storage.EpisodeWatchStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown episode watch status %q", ErrInvalidInput, status)
	}

	episode, err := m.storage.GetEpisodeMetadata(ctx, table.EpisodeMetadata.ID.EQ(sqlite.Int64(episodeID)))
	if err != nil {
		return err
	}

	watch := model.EpisodeWatch{
		UserID:    userID,
		ShowID:    episode.ShowID,
		EpisodeID: episode.ID,
		Status:    string(status),
	}
	if status == storage.EpisodeWatched {
		now := time.Now()
		watch.WatchedAt = &now
	}

	if err := m.storage.UpsertEpisodeWatch(ctx, watch); err != nil {
		return err
	}

	err = m.RecomputeShowProgress(ctx, userID, int64(episode.ShowID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// watching an untracked show is allowed; nothing to recompute
			logger.FromCtx(ctx).Debugw("no subscription to recompute", "userID", userID, "showID", episode.ShowID)
			return nil
		}
		return fmt.Errorf("episode watch saved but progress recompute failed: %w", err)
	}

	return nil
}
