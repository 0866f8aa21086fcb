package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showsync/pkg/storage"
	"showsync/pkg/storage/sqlite/schema/gen/model"
	"showsync/pkg/storage/sqlite/schema/gen/table"
)

func initSqlite(t *testing.T) storage.Storage {
	t.Helper()
	store, err := New(":memory:")
	require.Nil(t, err)
	return store
}

func ptr[A any](a A) *A {
	return &a
}

func storedShow(t *testing.T, ctx context.Context, store storage.Storage, upstreamID int64, title string) int64 {
	t.Helper()
	id, err := store.CreateShowMetadata(ctx, model.ShowMetadata{
		UpstreamID: upstreamID,
		Title:      title,
		Genres:     `["Drama"]`,
		YearLabel:  "2008-2013",
	})
	require.Nil(t, err)
	return id
}

func TestNew(t *testing.T) {
	store := initSqlite(t)
	assert.NotNil(t, store)
}

func TestShowMetadataUpsert(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	first := model.ShowMetadata{
		UpstreamID: 1396,
		Title:      "Breaking Bad",
		Overview:   ptr("A chemistry teacher."),
		Status:     ptr("Ended"),
		Rating:     ptr(8.9),
		Genres:     `["Drama","Crime"]`,
		YearLabel:  "2008-2013",
	}

	id, err := store.CreateShowMetadata(ctx, first)
	assert.Nil(t, err)
	assert.NotZero(t, id)

	// same upstream id settles on the same row with refreshed fields
	second := first
	second.Title = "Breaking Bad (updated)"
	second.Rating = ptr(9.0)

	againID, err := store.CreateShowMetadata(ctx, second)
	assert.Nil(t, err)
	assert.Equal(t, id, againID)

	stored, err := store.GetShowMetadata(ctx, table.ShowMetadata.UpstreamID.EQ(sqlite.Int64(1396)))
	assert.Nil(t, err)
	assert.Equal(t, "Breaking Bad (updated)", stored.Title)
	assert.Equal(t, ptr(9.0), stored.Rating)
	assert.Equal(t, `["Drama","Crime"]`, stored.Genres)

	all, err := store.ListShowMetadata(ctx)
	assert.Nil(t, err)
	assert.Len(t, all, 1)
}

func TestGetShowMetadataNotFound(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	_, err := store.GetShowMetadata(ctx, table.ShowMetadata.UpstreamID.EQ(sqlite.Int64(404)))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSeasonMetadataBatchDedup(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)
	showID := storedShow(t, ctx, store, 1396, "Breaking Bad")

	inserted, err := store.CreateSeasonMetadata(ctx, []model.SeasonMetadata{
		{ShowID: int32(showID), UpstreamID: 10, Number: 1, Title: "Season 1", EpisodeCount: 7},
	})
	assert.Nil(t, err)
	assert.Equal(t, int64(1), inserted)

	// the stored row is skipped, only the new one lands
	inserted, err = store.CreateSeasonMetadata(ctx, []model.SeasonMetadata{
		{ShowID: int32(showID), UpstreamID: 10, Number: 1, Title: "Season 1", EpisodeCount: 7},
		{ShowID: int32(showID), UpstreamID: 11, Number: 2, Title: "Season 2", EpisodeCount: 13},
	})
	assert.Nil(t, err)
	assert.Equal(t, int64(1), inserted)

	seasons, err := store.ListSeasonMetadata(ctx, showID)
	assert.Nil(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, int32(1), seasons[0].Number)
	assert.Equal(t, int32(2), seasons[1].Number)
}

func TestSeasonMetadataEmptyBatch(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	inserted, err := store.CreateSeasonMetadata(ctx, nil)
	assert.Nil(t, err)
	assert.Zero(t, inserted)
}

func TestEpisodeMetadataOrdering(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)
	showID := storedShow(t, ctx, store, 1396, "Breaking Bad")

	_, err := store.CreateSeasonMetadata(ctx, []model.SeasonMetadata{
		{ShowID: int32(showID), UpstreamID: 10, Number: 1, Title: "Season 1"},
		{ShowID: int32(showID), UpstreamID: 11, Number: 2, Title: "Season 2"},
	})
	require.Nil(t, err)

	seasons, err := store.ListSeasonMetadata(ctx, showID)
	require.Nil(t, err)

	inserted, err := store.CreateEpisodeMetadata(ctx, []model.EpisodeMetadata{
		{ShowID: int32(showID), SeasonID: seasons[1].ID, UpstreamID: 201, Title: "Seven Thirty-Seven", SeasonNumber: 2, EpisodeNumber: 1},
		{ShowID: int32(showID), SeasonID: seasons[0].ID, UpstreamID: 102, Title: "Cat's in the Bag...", SeasonNumber: 1, EpisodeNumber: 2},
		{ShowID: int32(showID), SeasonID: seasons[0].ID, UpstreamID: 101, Title: "Pilot", SeasonNumber: 1, EpisodeNumber: 1},
	})
	assert.Nil(t, err)
	assert.Equal(t, int64(3), inserted)

	episodes, err := store.ListEpisodeMetadata(ctx, showID)
	assert.Nil(t, err)
	require.Len(t, episodes, 3)
	assert.Equal(t, "Pilot", episodes[0].Title)
	assert.Equal(t, "Cat's in the Bag...", episodes[1].Title)
	assert.Equal(t, "Seven Thirty-Seven", episodes[2].Title)

	// re-running the whole batch inserts nothing
	inserted, err = store.CreateEpisodeMetadata(ctx, []model.EpisodeMetadata{
		{ShowID: int32(showID), SeasonID: seasons[0].ID, UpstreamID: 101, Title: "Pilot", SeasonNumber: 1, EpisodeNumber: 1},
		{ShowID: int32(showID), SeasonID: seasons[0].ID, UpstreamID: 102, Title: "Cat's in the Bag...", SeasonNumber: 1, EpisodeNumber: 2},
	})
	assert.Nil(t, err)
	assert.Zero(t, inserted)
}

func TestCuratedListings(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	jan := time.Date(2008, 1, 20, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2016, 7, 15, 0, 0, 0, 0, time.UTC)

	_, err := store.CreateShowMetadata(ctx, model.ShowMetadata{
		UpstreamID: 1396, Title: "Breaking Bad", Rating: ptr(8.9),
		FirstAired: &jan, Genres: `["Drama","Crime"]`, YearLabel: "2008-2013",
	})
	require.Nil(t, err)
	_, err = store.CreateShowMetadata(ctx, model.ShowMetadata{
		UpstreamID: 66732, Title: "Stranger Things", Rating: ptr(8.6),
		FirstAired: &jul, Genres: `["Drama","Mystery"]`, YearLabel: "2016-Present",
	})
	require.Nil(t, err)
	_, err = store.CreateShowMetadata(ctx, model.ShowMetadata{
		UpstreamID: 999, Title: "Unrated", Genres: `[]`,
	})
	require.Nil(t, err)

	popular, err := store.ListPopularShows(ctx, storage.ShowFilter{})
	assert.Nil(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, "Breaking Bad", popular[0].Title)
	assert.Equal(t, "Stranger Things", popular[1].Title)

	// genre filter round trip
	mystery, err := store.ListPopularShows(ctx, storage.ShowFilter{Genre: "Mystery"})
	assert.Nil(t, err)
	require.Len(t, mystery, 1)
	assert.Equal(t, "Stranger Things", mystery[0].Title)

	recent, err := store.ListRecentShows(ctx, storage.ShowFilter{})
	assert.Nil(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Stranger Things", recent[0].Title)

	topRated, err := store.ListTopRatedShows(ctx, storage.ShowFilter{Limit: 1})
	assert.Nil(t, err)
	require.Len(t, topRated, 1)
	assert.Equal(t, "Breaking Bad", topRated[0].Title)

	genres, err := store.ListGenreValues(ctx)
	assert.Nil(t, err)
	assert.ElementsMatch(t, []string{`["Drama","Crime"]`, `["Drama","Mystery"]`, `[]`}, genres)
}

func TestSubscriptionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)
	showID := storedShow(t, ctx, store, 1396, "Breaking Bad")

	sub := model.ShowSubscription{
		UserID:        "alice",
		ShowID:        int32(showID),
		Status:        string(storage.WatchStatusWatching),
		TotalEpisodes: 62,
	}

	id, err := store.CreateSubscription(ctx, sub)
	assert.Nil(t, err)
	assert.NotZero(t, id)

	_, err = store.CreateSubscription(ctx, sub)
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	stored, err := store.GetSubscription(ctx, "alice", showID)
	assert.Nil(t, err)
	assert.Equal(t, string(storage.WatchStatusWatching), stored.Status)
	assert.Equal(t, int32(62), stored.TotalEpisodes)
	assert.False(t, stored.Favorite)

	stored.Status = string(storage.WatchStatusCompleted)
	stored.Favorite = true
	err = store.UpdateSubscription(ctx, *stored)
	assert.Nil(t, err)

	updated, err := store.GetSubscription(ctx, "alice", showID)
	assert.Nil(t, err)
	assert.Equal(t, string(storage.WatchStatusCompleted), updated.Status)
	assert.True(t, updated.Favorite)
	assert.NotNil(t, updated.UpdatedAt)

	subs, err := store.ListSubscriptions(ctx, "alice")
	assert.Nil(t, err)
	assert.Len(t, subs, 1)

	// other users see nothing
	subs, err = store.ListSubscriptions(ctx, "bob")
	assert.Nil(t, err)
	assert.Empty(t, subs)
}

func TestListSubscriptionsCombinesFilters(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)
	showID := storedShow(t, ctx, store, 1396, "Breaking Bad")
	otherID := storedShow(t, ctx, store, 66732, "Stranger Things")

	_, err := store.CreateSubscription(ctx, model.ShowSubscription{
		UserID:   "alice",
		ShowID:   int32(showID),
		Status:   string(storage.WatchStatusCompleted),
		Favorite: true,
	})
	require.Nil(t, err)
	_, err = store.CreateSubscription(ctx, model.ShowSubscription{
		UserID:   "alice",
		ShowID:   int32(otherID),
		Status:   string(storage.WatchStatusCompleted),
		Favorite: false,
	})
	require.Nil(t, err)

	// every expression must apply alongside the user filter
	subs, err := store.ListSubscriptions(ctx, "alice",
		table.ShowSubscription.Status.EQ(sqlite.String(string(storage.WatchStatusCompleted))),
		table.ShowSubscription.Favorite.IS_TRUE(),
	)
	require.Nil(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, int32(showID), subs[0].ShowID)
}

func TestUpdateSubscriptionNotTracked(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)
	showID := storedShow(t, ctx, store, 1396, "Breaking Bad")

	err := store.UpdateSubscription(ctx, model.ShowSubscription{
		UserID: "nobody",
		ShowID: int32(showID),
		Status: string(storage.WatchStatusWatching),
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteSubscriptionWithWatches(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)
	showID := storedShow(t, ctx, store, 1396, "Breaking Bad")

	_, err := store.CreateSeasonMetadata(ctx, []model.SeasonMetadata{
		{ShowID: int32(showID), UpstreamID: 10, Number: 1, Title: "Season 1"},
	})
	require.Nil(t, err)
	seasons, err := store.ListSeasonMetadata(ctx, showID)
	require.Nil(t, err)

	_, err = store.CreateEpisodeMetadata(ctx, []model.EpisodeMetadata{
		{ShowID: int32(showID), SeasonID: seasons[0].ID, UpstreamID: 101, Title: "Pilot", SeasonNumber: 1, EpisodeNumber: 1},
	})
	require.Nil(t, err)
	episodes, err := store.ListEpisodeMetadata(ctx, showID)
	require.Nil(t, err)

	_, err = store.CreateSubscription(ctx, model.ShowSubscription{
		UserID: "alice", ShowID: int32(showID), Status: string(storage.WatchStatusWatching),
	})
	require.Nil(t, err)

	now := time.Now()
	err = store.UpsertEpisodeWatch(ctx, model.EpisodeWatch{
		UserID: "alice", ShowID: int32(showID), EpisodeID: episodes[0].ID,
		Status: string(storage.EpisodeWatched), WatchedAt: &now,
	})
	require.Nil(t, err)

	err = store.DeleteSubscriptionWithWatches(ctx, "alice", showID)
	assert.Nil(t, err)

	_, err = store.GetSubscription(ctx, "alice", showID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	watches, err := store.ListEpisodeWatches(ctx, "alice", showID)
	assert.Nil(t, err)
	assert.Empty(t, watches)

	// untracking twice reports not found
	err = store.DeleteSubscriptionWithWatches(ctx, "alice", showID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestEpisodeWatchUpsertAndAggregate(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)
	showID := storedShow(t, ctx, store, 1396, "Breaking Bad")

	_, err := store.CreateSeasonMetadata(ctx, []model.SeasonMetadata{
		{ShowID: int32(showID), UpstreamID: 10, Number: 1, Title: "Season 1"},
	})
	require.Nil(t, err)
	seasons, err := store.ListSeasonMetadata(ctx, showID)
	require.Nil(t, err)

	_, err = store.CreateEpisodeMetadata(ctx, []model.EpisodeMetadata{
		{ShowID: int32(showID), SeasonID: seasons[0].ID, UpstreamID: 101, Title: "Pilot", SeasonNumber: 1, EpisodeNumber: 1},
		{ShowID: int32(showID), SeasonID: seasons[0].ID, UpstreamID: 102, Title: "Cat's in the Bag...", SeasonNumber: 1, EpisodeNumber: 2},
	})
	require.Nil(t, err)
	episodes, err := store.ListEpisodeMetadata(ctx, showID)
	require.Nil(t, err)

	early := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	late := time.Date(2024, 3, 2, 20, 0, 0, 0, time.UTC)

	err = store.UpsertEpisodeWatch(ctx, model.EpisodeWatch{
		UserID: "alice", ShowID: int32(showID), EpisodeID: episodes[0].ID,
		Status: string(storage.EpisodeWatched), WatchedAt: &early,
	})
	assert.Nil(t, err)
	err = store.UpsertEpisodeWatch(ctx, model.EpisodeWatch{
		UserID: "alice", ShowID: int32(showID), EpisodeID: episodes[1].ID,
		Status: string(storage.EpisodeWatched), WatchedAt: &late,
	})
	assert.Nil(t, err)

	agg, err := store.GetWatchAggregate(ctx, "alice", showID)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), agg.WatchedCount)
	require.NotNil(t, agg.LastWatchedAt)
	assert.True(t, agg.LastWatchedAt.Equal(late))

	// marking unwatched replaces the row and clears watched_at
	err = store.UpsertEpisodeWatch(ctx, model.EpisodeWatch{
		UserID: "alice", ShowID: int32(showID), EpisodeID: episodes[1].ID,
		Status: string(storage.EpisodeUnwatched),
	})
	assert.Nil(t, err)

	agg, err = store.GetWatchAggregate(ctx, "alice", showID)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), agg.WatchedCount)
	assert.True(t, agg.LastWatchedAt.Equal(early))

	watches, err := store.ListEpisodeWatches(ctx, "alice", showID)
	assert.Nil(t, err)
	assert.Len(t, watches, 2)
}
