package storage

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/sqlite"

	"showsync/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")
var ErrAlreadyExists = errors.New("already exists in storage")

type Storage interface {
	ShowMetadataStorage
	SeasonMetadataStorage
	EpisodeMetadataStorage
	SubscriptionStorage
	EpisodeWatchStorage
}

// ShowFilter narrows curated show listings.
type ShowFilter struct {
	// Genre requires the named genre to appear in the show's genre list.
	Genre string
	Limit int64
}

type ShowMetadataStorage interface {
	// CreateShowMetadata upserts by upstream id and returns the row id.
	// Concurrent creates for the same upstream id settle on one row.
	CreateShowMetadata(ctx context.Context, show model.ShowMetadata) (int64, error)
	GetShowMetadata(ctx context.Context, where sqlite.BoolExpression) (*model.ShowMetadata, error)
	ListShowMetadata(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.ShowMetadata, error)
	DeleteShowMetadata(ctx context.Context, id int64) error

	// Curated listings over the local store.
	ListPopularShows(ctx context.Context, filter ShowFilter) ([]*model.ShowMetadata, error)
	ListRecentShows(ctx context.Context, filter ShowFilter) ([]*model.ShowMetadata, error)
	ListTopRatedShows(ctx context.Context, filter ShowFilter) ([]*model.ShowMetadata, error)
	// ListGenreValues returns the raw genres column of every stored show.
	ListGenreValues(ctx context.Context) ([]string, error)
}

type SeasonMetadataStorage interface {
	// CreateSeasonMetadata inserts the batch; rows whose (show, upstream id)
	// pair already exists are skipped. Returns the number of rows inserted.
	CreateSeasonMetadata(ctx context.Context, seasons []model.SeasonMetadata) (int64, error)
	// ListSeasonMetadata lists a show's seasons ordered by season number.
	ListSeasonMetadata(ctx context.Context, showID int64) ([]*model.SeasonMetadata, error)
}

type EpisodeMetadataStorage interface {
	// CreateEpisodeMetadata inserts the batch; rows whose (show, upstream id)
	// pair already exists are skipped. Returns the number of rows inserted.
	CreateEpisodeMetadata(ctx context.Context, episodes []model.EpisodeMetadata) (int64, error)
	// ListEpisodeMetadata lists a show's episodes ordered by
	// (season number, episode number).
	ListEpisodeMetadata(ctx context.Context, showID int64) ([]*model.EpisodeMetadata, error)
	GetEpisodeMetadata(ctx context.Context, where sqlite.BoolExpression) (*model.EpisodeMetadata, error)
}

type SubscriptionStorage interface {
	// CreateSubscription returns ErrAlreadyExists when the (user, show)
	// pair is already tracked.
	CreateSubscription(ctx context.Context, sub model.ShowSubscription) (int64, error)
	GetSubscription(ctx context.Context, userID string, showID int64) (*model.ShowSubscription, error)
	ListSubscriptions(ctx context.Context, userID string, where ...sqlite.BoolExpression) ([]*model.ShowSubscription, error)
	// UpdateSubscription patches mutable fields and stamps updated_at.
	UpdateSubscription(ctx context.Context, sub model.ShowSubscription) error
	// DeleteSubscriptionWithWatches removes the subscription and the user's
	// watch rows for the show in one transaction.
	DeleteSubscriptionWithWatches(ctx context.Context, userID string, showID int64) error
}

// WatchAggregate is the per-user watch summary for one show, derived from
// episode_watch rows.
type WatchAggregate struct {
	WatchedCount  int64
	LastWatchedAt *time.Time
}

type EpisodeWatchStorage interface {
	// UpsertEpisodeWatch writes the watch row keyed on (user, episode).
	UpsertEpisodeWatch(ctx context.Context, watch model.EpisodeWatch) error
	// ListEpisodeWatches lists a user's watch rows for one show.
	ListEpisodeWatches(ctx context.Context, userID string, showID int64) ([]*model.EpisodeWatch, error)
	// GetWatchAggregate summarizes a user's watched rows for one show.
	GetWatchAggregate(ctx context.Context, userID string, showID int64) (WatchAggregate, error)
}
