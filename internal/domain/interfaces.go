package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../mocks/mock_git_backend.go -package=mocks . GitBackend,Prober

// GitBackend defines the interface for a Git execution provider
type GitBackend interface {
	// Kind returns which backend this is
	Kind() BackendKind
	// Ready reports whether the backend can currently serve requests
	Ready() bool
	// Clone clones a repository and returns its files
	Clone(ctx context.Context, url string) (*CloneResult, error)
	// ExecuteCommand runs an arbitrary command in the given working directory
	ExecuteCommand(ctx context.Context, command, cwd string) (*CommandResult, error)
}

// Prober checks whether the remote backend is reachable
type Prober interface {
	// Probe returns true when the remote backend answered its health check.
	// It never returns an error.
	Probe(ctx context.Context) bool
}

// Cache defines the interface for content caching
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes a key from cache
	Delete(ctx context.Context, key string) error
	// Close releases cache resources
	Close() error
}
