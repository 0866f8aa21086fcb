package cmd

import (
	"context"
	"encoding/json"

	"showsync/config"
	"showsync/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchCmd searches the configured provider for shows by name
var searchCmd = &cobra.Command{
	Use:        "search",
	Short:      "search for shows",
	Long:       `search the configured provider for shows by name`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"query"},
	Run: func(cmd *cobra.Command, args []string) {
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
		results, err := m.SearchShows(ctx, args[0])
		if err != nil {
			log.Fatal("failed to search shows", zap.Error(err))
		}

		b, err := json.Marshal(results)
		if err != nil {
			log.Fatal("failed to marshal search results", zap.Error(err))
		}

		log.Info(string(b))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
