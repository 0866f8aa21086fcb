package manager

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"showsync/pkg/provider"
	"showsync/pkg/provider/mocks"
	"showsync/pkg/storage"
)

// seedLayout backfills a show with the given episodes-per-season layout,
// tracks it for alice, and returns the local show id plus episode ids in
// airing order.
func seedLayout(t *testing.T, ctx context.Context, m ShowManager, client *mocks.MockClient, layout []int) (int64, []int64) {
	t.Helper()

	client.EXPECT().GetShowDetail(gomock.Any(), int64(1396)).Return(breakingBad(), nil)

	seasons := make([]provider.Season, 0, len(layout))
	episodes := make([]provider.Episode, 0)
	upstreamID := int64(100)
	for i, count := range layout {
		number := int32(i + 1)
		seasons = append(seasons, provider.Season{
			UpstreamID: int64(10 + i), Number: number,
			Name: fmt.Sprintf("Season %d", number), EpisodeCount: int32(count),
		})
		for e := 1; e <= count; e++ {
			upstreamID++
			episodes = append(episodes, provider.Episode{
				UpstreamID:    upstreamID,
				Name:          fmt.Sprintf("S%dE%d", number, e),
				SeasonNumber:  number,
				EpisodeNumber: int32(e),
			})
		}
	}

	if len(layout) > 0 {
		client.EXPECT().GetSeasons(gomock.Any(), int64(1396)).Return(seasons, nil)
		client.EXPECT().GetEpisodes(gomock.Any(), int64(1396), gomock.Any()).Return(episodes, nil)
	}

	show, err := m.GetShow(ctx, 1396)
	require.Nil(t, err)

	var episodeIDs []int64
	if len(layout) > 0 {
		stored, err := m.GetEpisodes(ctx, 1396)
		require.Nil(t, err)
		for _, e := range stored {
			episodeIDs = append(episodeIDs, e.ID)
		}
	}

	_, err = m.Track(ctx, "alice", show.ID)
	require.Nil(t, err)

	return show.ID, episodeIDs
}

func TestProgressThreeOfTen(t *testing.T) {
	ctx := context.Background()
	m, client, store := newTestManager(t)

	showID, episodeIDs := seedLayout(t, ctx, m, client, []int{5, 5})

	for _, id := range episodeIDs[:3] {
		require.Nil(t, m.SetEpisodeWatchStatus(ctx, "alice", id, storage.EpisodeWatched))
	}

	sub, err := store.GetSubscription(ctx, "alice", showID)
	require.Nil(t, err)
	assert.Equal(t, int32(30), sub.Progress)
	assert.Equal(t, int32(3), sub.WatchedCount)
	assert.Equal(t, int32(10), sub.TotalEpisodes)
}

func TestProgressOneOfThreeFloors(t *testing.T) {
	ctx := context.Background()
	m, client, store := newTestManager(t)

	showID, episodeIDs := seedLayout(t, ctx, m, client, []int{3})

	require.Nil(t, m.SetEpisodeWatchStatus(ctx, "alice", episodeIDs[0], storage.EpisodeWatched))

	sub, err := store.GetSubscription(ctx, "alice", showID)
	require.Nil(t, err)
	assert.Equal(t, int32(33), sub.Progress)
}

func TestProgressNoEpisodes(t *testing.T) {
	ctx := context.Background()
	m, client, store := newTestManager(t)

	showID, _ := seedLayout(t, ctx, m, client, nil)

	require.Nil(t, m.RecomputeShowProgress(ctx, "alice", showID))

	sub, err := store.GetSubscription(ctx, "alice", showID)
	require.Nil(t, err)
	assert.Zero(t, sub.Progress)
	assert.Zero(t, sub.TotalEpisodes)
}

func TestShowProgressSeasonShape(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	showID, episodeIDs := seedLayout(t, ctx, m, client, []int{2, 3})

	// watch all of season 1 and one episode of season 2
	require.Nil(t, m.SetEpisodeWatchStatus(ctx, "alice", episodeIDs[0], storage.EpisodeWatched))
	require.Nil(t, m.SetEpisodeWatchStatus(ctx, "alice", episodeIDs[1], storage.EpisodeWatched))
	require.Nil(t, m.SetEpisodeWatchStatus(ctx, "alice", episodeIDs[2], storage.EpisodeWatched))

	progress, err := m.GetShowProgress(ctx, "alice", showID)
	require.Nil(t, err)

	assert.Equal(t, int32(60), progress.Progress)
	assert.Equal(t, int32(3), progress.WatchedCount)
	assert.Equal(t, int32(5), progress.TotalEpisodes)
	require.Len(t, progress.Seasons, 2)
	assert.Equal(t, SeasonProgress{SeasonNumber: 1, Watched: 2, Total: 2}, progress.Seasons[0])
	assert.Equal(t, SeasonProgress{SeasonNumber: 2, Watched: 1, Total: 3}, progress.Seasons[1])
	assert.NotNil(t, progress.LastWatchedAt)
}

func TestShowProgressNotTracked(t *testing.T) {
	ctx := context.Background()
	m, client, _ := newTestManager(t)

	showID, _ := seedLayout(t, ctx, m, client, []int{1})

	_, err := m.GetShowProgress(ctx, "nobody", showID)
	assert.ErrorIs(t, err, ErrNotTracked)
}
