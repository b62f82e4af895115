// Package contract provides interfaces and shared utilities for the devlens
// CLI's internal architecture.
package contract

import (
	"context"

	"github.com/devlens/devlens/schema"
)

// ProfileSource defines the operations needed to obtain profile and commit
// data for a user. This allows the scoring pipeline to be tested without a
// live GitHub API.
type ProfileSource interface {
	// FetchProfile retrieves repository metadata, language distribution and
	// contribution stats for a username.
	FetchProfile(ctx context.Context, username string) (*schema.Profile, error)

	// FetchRecentCommits retrieves up to limit recent commits authored by
	// the user across their most active repositories.
	FetchRecentCommits(ctx context.Context, username string, limit int) ([]schema.Commit, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetResultStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
