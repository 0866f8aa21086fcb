package cmd

import (
	"fmt"
	"net/url"

	"showsync/config"
	showhttp "showsync/pkg/http"
	"showsync/pkg/manager"
	"showsync/pkg/provider"
	"showsync/pkg/provider/tmdb"
	"showsync/pkg/provider/tvdb"
	"showsync/pkg/storage/sqlite"
)

// newProviderClient builds the upstream client the configuration selects.
func newProviderClient(cfg config.Provider) (provider.Client, error) {
	u := url.URL{
		Scheme: cfg.Scheme,
		Host:   cfg.Host,
	}

	httpc := showhttp.NewRetryingClient(
		showhttp.WithMaxRetries(cfg.MaxRetries),
		showhttp.WithBaseBackoff(cfg.BaseBackoff),
	)

	switch cfg.Kind {
	case "tmdb":
		return tmdb.New(u.String(), cfg.APIKey, tmdb.WithHTTPClient(httpc)), nil
	case "tvdb":
		return tvdb.New(u.String(), cfg.APIKey, tvdb.WithHTTPClient(httpc)), nil
	default:
		return nil, fmt.Errorf("unknown provider kind: %q", cfg.Kind)
	}
}

// newShowManager wires the configured provider and store into a manager.
func newShowManager(cfg config.Config) (manager.ShowManager, error) {
	client, err := newProviderClient(cfg.Provider)
	if err != nil {
		return manager.ShowManager{}, err
	}

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return manager.ShowManager{}, fmt.Errorf("failed to open storage: %w", err)
	}

	return manager.New(client, store), nil
}
