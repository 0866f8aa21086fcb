package storage

// WatchStatus is the user-facing state of a tracked show.
type WatchStatus string

const (
	WatchStatusWatching    WatchStatus = "watching"
	WatchStatusCompleted   WatchStatus = "completed"
	WatchStatusOnHold      WatchStatus = "on-hold"
	WatchStatusPlanToWatch WatchStatus = "plan-to-watch"
)

// Valid reports whether the status is one of the known values.
func (s WatchStatus) Valid() bool {
	switch s {
	case WatchStatusWatching, WatchStatusCompleted, WatchStatusOnHold, WatchStatusPlanToWatch:
		return true
	}
	return false
}

// EpisodeWatchStatus is the state of a single episode for a user.
type EpisodeWatchStatus string

const (
	EpisodeWatched    EpisodeWatchStatus = "watched"
	EpisodeUnwatched  EpisodeWatchStatus = "unwatched"
	EpisodeInProgress EpisodeWatchStatus = "in-progress"
)

func (s EpisodeWatchStatus) Valid() bool {
	switch s {
	case EpisodeWatched, EpisodeUnwatched, EpisodeInProgress:
		return true
	}
	return false
}
