package manager

import (
	"errors"

	"showsync/pkg/cache"
	"showsync/pkg/provider"
	"showsync/pkg/storage"
)

var (
	// ErrAlreadyTracked is returned when a user tracks a show twice.
	ErrAlreadyTracked = errors.New("show already tracked")
	// ErrNotTracked is returned for ledger operations on an untracked show.
	ErrNotTracked = errors.New("show not tracked")
	// ErrInvalidInput flags request validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// ShowManager coordinates the upstream provider and the local metadata store.
// Reads go through the store first; misses are fetched, transformed, and
// persisted before being served.
type ShowManager struct {
	provider provider.Client
	storage  storage.Storage
	searches *cache.Cache[string, []provider.SearchResult]
}

func New(client provider.Client, storage storage.Storage) ShowManager {
	return ShowManager{
		provider: client,
		storage:  storage,
		searches: cache.New[string, []provider.SearchResult](),
	}
}
