package cache

import (
	"time"

	"github.com/quantmind-br/hybridgit/internal/domain"
)

// Ensure BadgerCache implements domain.Cache
var _ domain.Cache = (*BadgerCache)(nil)

// DefaultGCInterval is how often the value log is garbage collected
const DefaultGCInterval = 5 * time.Minute

// Options contains cache configuration options
type Options struct {
	Directory  string
	InMemory   bool
	Logger     bool
	GCInterval time.Duration
}

// DefaultOptions returns default cache options
func DefaultOptions() Options {
	return Options{
		GCInterval: DefaultGCInterval,
	}
}
