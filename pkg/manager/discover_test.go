package manager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"showsync/pkg/provider"
)

func curatedShows() []provider.Show {
	bb := time.Date(2008, 1, 20, 0, 0, 0, 0, time.UTC)
	st := time.Date(2016, 7, 15, 0, 0, 0, 0, time.UTC)
	return []provider.Show{
		{
			UpstreamID: 1396, Name: "Breaking Bad", Rating: ptr(8.9),
			FirstAired: &bb, Genres: []string{"Drama", "Crime"}, YearLabel: "2008-2013",
		},
		{
			UpstreamID: 66732, Name: "Stranger Things", Rating: ptr(8.6),
			FirstAired: &st, Genres: []string{"Drama", "Mystery"}, YearLabel: "2016-Present",
		},
	}
}

func TestGetPopularShowsBackfillOnce(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetPopularShows(gomock.Any()).Return(curatedShows(), nil).Times(1)

	shows, err := m.GetPopularShows(ctx, DiscoverFilter{})
	require.Nil(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "Breaking Bad", shows[0].Title)
	assert.Equal(t, "Stranger Things", shows[1].Title)

	// second call serves from the store with no upstream request
	again, err := m.GetPopularShows(ctx, DiscoverFilter{})
	require.Nil(t, err)
	assert.Len(t, again, 2)
}

func TestGetPopularShowsGenreFilter(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetPopularShows(gomock.Any()).Return(curatedShows(), nil).AnyTimes()

	shows, err := m.GetPopularShows(ctx, DiscoverFilter{Genre: "Mystery"})
	require.Nil(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "Stranger Things", shows[0].Title)
	assert.Contains(t, shows[0].Genres, "Mystery")
}

func TestGetRecentShows(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetRecentShows(gomock.Any()).Return(curatedShows(), nil).Times(1)

	shows, err := m.GetRecentShows(ctx, DiscoverFilter{})
	require.Nil(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "Stranger Things", shows[0].Title)
}

func TestGetTopRatedShowsPartialPersist(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetTopRatedShows(gomock.Any()).Return(curatedShows(), nil).Times(1)

	shows, err := m.GetTopRatedShows(ctx, DiscoverFilter{Limit: 1})
	require.Nil(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "Breaking Bad", shows[0].Title)
}

func TestGetAllGenres(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	client.EXPECT().GetPopularShows(gomock.Any()).Return(curatedShows(), nil)

	_, err := m.GetPopularShows(ctx, DiscoverFilter{})
	require.Nil(t, err)

	genres, err := m.GetAllGenres(ctx)
	require.Nil(t, err)
	assert.Equal(t, []string{"Crime", "Drama", "Mystery"}, genres)
}

func TestGetAllGenresEmptyStore(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	genres, err := m.GetAllGenres(ctx)
	assert.Nil(t, err)
	assert.Empty(t, genres)
}
