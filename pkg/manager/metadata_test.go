package manager

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"showsync/pkg/provider"
)

func breakingBad() *provider.Show {
	aired := time.Date(2008, 1, 20, 0, 0, 0, 0, time.UTC)
	return &provider.Show{
		UpstreamID: 1396,
		Name:       "Breaking Bad",
		Overview:   ptr("A chemistry teacher."),
		Status:     ptr("Ended"),
		FirstAired: &aired,
		Network:    ptr("AMC"),
		Runtime:    ptr(int32(47)),
		Rating:     ptr(8.9),
		Genres:     []string{"Drama", "Crime"},
		YearLabel:  "2008-2013",
	}
}

func TestSearchShowsRejectsShortQuery(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	_, err := m.SearchShows(ctx, "a")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.SearchShows(ctx, "  b  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchShows(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().SearchShows(gomock.Any(), "breaking").Return([]provider.SearchResult{
		{UpstreamID: 1396, Name: "Breaking Bad", YearLabel: "2008"},
	}, nil)

	results, err := m.SearchShows(ctx, " breaking ")
	assert.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1396), results[0].UpstreamID)
}

func TestSearchShowsCachesPerQuery(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().SearchShows(gomock.Any(), "breaking").Return([]provider.SearchResult{
		{UpstreamID: 1396, Name: "Breaking Bad", YearLabel: "2008"},
	}, nil).Times(1)

	for i := 0; i < 3; i++ {
		results, err := m.SearchShows(ctx, "breaking")
		assert.Nil(t, err)
		require.Len(t, results, 1)
	}
}

func TestSearchShowsDoesNotCacheFailures(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().SearchShows(gomock.Any(), "breaking").Return(nil, provider.ErrUnavailable).Times(1)
	client.EXPECT().SearchShows(gomock.Any(), "breaking").Return([]provider.SearchResult{
		{UpstreamID: 1396, Name: "Breaking Bad", YearLabel: "2008"},
	}, nil).Times(1)

	_, err := m.SearchShows(ctx, "breaking")
	assert.ErrorIs(t, err, provider.ErrUnavailable)

	results, err := m.SearchShows(ctx, "breaking")
	assert.Nil(t, err)
	require.Len(t, results, 1)
}

func TestGetShowReadThrough(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	// one upstream fetch serves every later read
	client.EXPECT().GetShowDetail(gomock.Any(), int64(1396)).Return(breakingBad(), nil).Times(1)

	show, err := m.GetShow(ctx, 1396)
	require.Nil(t, err)
	assert.NotZero(t, show.ID)
	assert.Equal(t, int64(1396), show.UpstreamID)
	assert.Equal(t, "Breaking Bad", show.Title)
	assert.Equal(t, []string{"Drama", "Crime"}, show.Genres)
	assert.Equal(t, "2008-2013", show.YearLabel)

	again, err := m.GetShow(ctx, 1396)
	require.Nil(t, err)
	assert.Equal(t, show.ID, again.ID)
	assert.Equal(t, show.Genres, again.Genres)
}

func TestGetShowConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	m, client, store := newTestManager(t)

	// overlapping misses may each fetch; the upstream id constraint
	// collapses them onto one row
	client.EXPECT().GetShowDetail(gomock.Any(), int64(1396)).Return(breakingBad(), nil).MinTimes(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			show, err := m.GetShow(ctx, 1396)
			if assert.Nil(t, err) {
				assert.Equal(t, int64(1396), show.UpstreamID)
			}
		}()
	}
	wg.Wait()

	rows, err := store.ListShowMetadata(ctx)
	require.Nil(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Breaking Bad", rows[0].Title)
}

func TestGetShowNotFound(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetShowDetail(gomock.Any(), int64(404404)).Return(nil, provider.ErrNotFound)

	_, err := m.GetShow(ctx, 404404)
	assert.ErrorIs(t, err, provider.ErrNotFound)
}

func TestGetSeasonsBackfillOnce(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetShowDetail(gomock.Any(), int64(1396)).Return(breakingBad(), nil)
	client.EXPECT().GetSeasons(gomock.Any(), int64(1396)).Return([]provider.Season{
		{UpstreamID: 10, Number: 1, Name: "Season 1", EpisodeCount: 7},
		{UpstreamID: 11, Number: 2, Name: "Season 2", EpisodeCount: 13},
	}, nil).Times(1)

	seasons, err := m.GetSeasons(ctx, 1396)
	require.Nil(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, int32(1), seasons[0].Number)

	// second read is all local
	again, err := m.GetSeasons(ctx, 1396)
	require.Nil(t, err)
	assert.Len(t, again, 2)
}

func TestStoreSeasonsBatchDedup(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetShowDetail(gomock.Any(), int64(1396)).Return(breakingBad(), nil)
	show, err := m.GetShow(ctx, 1396)
	require.Nil(t, err)

	err = m.storeSeasons(ctx, show.ID, []provider.Season{
		{UpstreamID: 10, Number: 1, Name: "Season 1"},
	})
	require.Nil(t, err)

	// 10 repeats in the batch and is already stored; only 11 lands
	err = m.storeSeasons(ctx, show.ID, []provider.Season{
		{UpstreamID: 10, Number: 1, Name: "Season 1"},
		{UpstreamID: 10, Number: 1, Name: "Season 1 again"},
		{UpstreamID: 11, Number: 2, Name: "Season 2"},
	})
	require.Nil(t, err)

	stored, err := m.storage.ListSeasonMetadata(ctx, show.ID)
	require.Nil(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "Season 1", stored[0].Title)
	assert.Equal(t, "Season 2", stored[1].Title)
}

func TestGetEpisodesBackfill(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetShowDetail(gomock.Any(), int64(1396)).Return(breakingBad(), nil)
	client.EXPECT().GetSeasons(gomock.Any(), int64(1396)).Return([]provider.Season{
		{UpstreamID: 10, Number: 1, Name: "Season 1", EpisodeCount: 2},
	}, nil)
	client.EXPECT().GetEpisodes(gomock.Any(), int64(1396), gomock.Any()).Return([]provider.Episode{
		{UpstreamID: 101, Name: "Pilot", SeasonNumber: 1, EpisodeNumber: 1},
		{UpstreamID: 101, Name: "Pilot dupe", SeasonNumber: 1, EpisodeNumber: 1},
		{UpstreamID: 102, Name: "Cat's in the Bag...", SeasonNumber: 1, EpisodeNumber: 2},
		{UpstreamID: 999, Name: "Lost Special", SeasonNumber: 9, EpisodeNumber: 1},
	}, nil).Times(1)

	episodes, err := m.GetEpisodes(ctx, 1396)
	require.Nil(t, err)

	// the duplicate keeps its first occurrence, the unknown season is dropped
	require.Len(t, episodes, 2)
	assert.Equal(t, "Pilot", episodes[0].Title)
	assert.Equal(t, "Cat's in the Bag...", episodes[1].Title)

	again, err := m.GetEpisodes(ctx, 1396)
	require.Nil(t, err)
	assert.Len(t, again, 2)
}

func TestGetCastPassThrough(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetCast(gomock.Any(), int64(1396)).Return([]provider.CastMember{
		{UpstreamPersonID: 101, Name: "Bryan Cranston", CharacterName: "Walter White"},
	}, nil)

	cast, err := m.GetCast(ctx, 1396)
	assert.Nil(t, err)
	require.Len(t, cast, 1)
	assert.Equal(t, "Bryan Cranston", cast[0].Name)
}
