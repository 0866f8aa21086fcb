package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"showsync/config"
	"showsync/pkg/logger"
	"showsync/pkg/manager"
)

var (
	discoverGenre string
	discoverLimit int64
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "discover shows from curated listings",
	Long:  `discover shows from curated listings`,
}

type curatedLister func(manager.ShowManager, context.Context, manager.DiscoverFilter) ([]manager.Show, error)

func runDiscover(list curatedLister) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, err := newShowManager(cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		ctx := logger.WithCtx(context.Background(), log)
		shows, err := list(m, ctx, manager.DiscoverFilter{Genre: discoverGenre, Limit: discoverLimit})
		if err != nil {
			log.Fatal("failed to list shows", zap.Error(err))
		}

		for _, s := range shows {
			aired := "unaired"
			if s.FirstAired != nil {
				aired = humanize.Time(*s.FirstAired)
			}
			fmt.Printf("%s (%s) first aired %s\n", s.Title, s.YearLabel, aired)
		}
	}
}

var discoverPopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "list popular shows",
	Run: runDiscover(func(m manager.ShowManager, ctx context.Context, f manager.DiscoverFilter) ([]manager.Show, error) {
		return m.GetPopularShows(ctx, f)
	}),
}

var discoverRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "list recently premiered shows",
	Run: runDiscover(func(m manager.ShowManager, ctx context.Context, f manager.DiscoverFilter) ([]manager.Show, error) {
		return m.GetRecentShows(ctx, f)
	}),
}

var discoverTopRatedCmd = &cobra.Command{
	Use:   "top-rated",
	Short: "list top rated shows",
	Run: runDiscover(func(m manager.ShowManager, ctx context.Context, f manager.DiscoverFilter) ([]manager.Show, error) {
		return m.GetTopRatedShows(ctx, f)
	}),
}

func init() {
	discoverCmd.PersistentFlags().StringVarP(&discoverGenre, "genre", "g", "", "filter by genre")
	discoverCmd.PersistentFlags().Int64VarP(&discoverLimit, "limit", "l", 0, "max results")
	discoverCmd.AddCommand(discoverPopularCmd)
	discoverCmd.AddCommand(discoverRecentCmd)
	discoverCmd.AddCommand(discoverTopRatedCmd)
	rootCmd.AddCommand(discoverCmd)
}
