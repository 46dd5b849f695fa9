package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/quantmind-br/hybridgit/internal/cache"
	"github.com/quantmind-br/hybridgit/internal/domain"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

// CachedSnapshotter serves repeated snapshots of the same repository from a
// cache. Only successful results are stored.
type CachedSnapshotter struct {
	next   Service
	cache  domain.Cache
	ttl    time.Duration
	logger *utils.Logger
}

// NewCached wraps next with cache c
func NewCached(next Service, c domain.Cache, ttl time.Duration, logger *utils.Logger) *CachedSnapshotter {
	if logger == nil {
		logger = utils.Nop()
	}
	return &CachedSnapshotter{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.WithComponent("snapshot_cache"),
	}
}

// Snapshot returns a cached result for repoURL or produces and stores one
func (c *CachedSnapshotter) Snapshot(ctx context.Context, repoURL string) (*domain.SnapshotResult, error) {
	key := cache.SnapshotKey(repoURL)

	data, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var result domain.SnapshotResult
		jsonErr := json.Unmarshal(data, &result)
		if jsonErr == nil {
			c.logger.Debug().Str("repo_url", repoURL).Msg("Snapshot cache hit")
			result.RepoURL = repoURL
			return &result, nil
		}
		c.logger.Warn().Err(jsonErr).Msg("Discarding corrupt cache entry")
		_ = c.cache.Delete(ctx, key)
	case !errors.Is(err, domain.ErrCacheMiss):
		c.logger.Warn().Err(err).Msg("Snapshot cache read failed")
	}

	result, err := c.next.Snapshot(ctx, repoURL)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Warn().Err(err).Msg("Snapshot cache write failed")
		}
	}
	return result, nil
}
