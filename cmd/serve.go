package cmd

import (
	"showsync/config"
	"showsync/pkg/logger"
	"showsync/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the show metadata server",
	Long:  `start the show metadata server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		if err := cfg.Validate(); err != nil {
			log.Fatal("invalid configuration", zap.Error(err))
		}

		m, err := newShowManager(cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		server := server.New(log, m)
		log.Error(server.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
