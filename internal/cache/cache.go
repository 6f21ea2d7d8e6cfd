// Package cache holds fetched repository contents in Redis so repeat
// reviews of the same ref skip the GitHub round-trips. The cache is
// optional: with no Redis URL configured every lookup is a miss.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"coderev/internal/logger"
	"coderev/internal/model"
)

const repoTTL = 24 * time.Hour

// RepoCache caches repository file sets. A nil client disables it;
// all methods are safe to call either way. Failures degrade to a
// cache miss, never to a request failure.
type RepoCache struct {
	client *redis.Client
}

// New builds a cache from a Redis URL. An empty URL returns a
// disabled cache.
func New(redisURL string) (*RepoCache, error) {
	if redisURL == "" {
		return &RepoCache{}, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return &RepoCache{client: redis.NewClient(opts)}, nil
}

// Enabled reports whether a Redis backend is configured.
func (c *RepoCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Key returns the cache key for a repository ref.
func Key(owner, repo, ref string) string {
	return fmt.Sprintf("code:%s/%s@%s", owner, repo, ref)
}

// Get returns the cached file set for key, if present.
func (c *RepoCache) Get(ctx context.Context, key string) ([]model.RepoFile, bool) {
	if !c.Enabled() {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("repo cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	var files []model.RepoFile
	if err := json.Unmarshal([]byte(raw), &files); err != nil {
		logger.Warn("repo cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	logger.Info("using cached repository data", "key", key)
	return files, true
}

// Set stores the file set for key with the standard TTL.
func (c *RepoCache) Set(ctx context.Context, key string, files []model.RepoFile) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(files)
	if err != nil {
		logger.Warn("repo cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, raw, repoTTL).Err(); err != nil {
		logger.Warn("repo cache write failed", "key", key, "error", err)
	}
}

// Close releases the Redis connection, if any.
func (c *RepoCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
