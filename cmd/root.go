package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "showsync",
	Short: "showsync cli",
	Long:  `showsync cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("SHOWSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("provider.kind", "tmdb")
	viper.SetDefault("provider.scheme", "https")
	viper.SetDefault("provider.host", "api.themoviedb.org")
	viper.SetDefault("provider.apiKey", "")
	viper.SetDefault("provider.backoff", 500*time.Millisecond)
	viper.SetDefault("provider.maxRetries", 3)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "showsync.sqlite")
}
