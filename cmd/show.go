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

var (
	upstreamID int64
)

// showDetailsCmd fetches a show and its seasons, caching them locally
var showDetailsCmd = &cobra.Command{
	Use:   "show",
	Short: "get show details",
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
		show, err := m.GetShow(ctx, upstreamID)
		if err != nil {
			log.Fatal("failed to get show details", zap.Error(err))
		}

		seasons, err := m.GetSeasons(ctx, upstreamID)
		if err != nil {
			log.Fatal("failed to get seasons", zap.Error(err))
		}

		out := struct {
			Show    any `json:"show"`
			Seasons any `json:"seasons"`
		}{show, seasons}

		b, err := json.Marshal(out)
		if err != nil {
			log.Fatal("failed to marshal show details", zap.Error(err))
		}

		log.Info(string(b))
	},
}

func init() {
	showDetailsCmd.Flags().Int64VarP(&upstreamID, "id", "i", 0, "provider show id")
	showDetailsCmd.MarkFlagRequired("id")
	getCmd.AddCommand(showDetailsCmd)
}
