package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jmwanyama/safari-ops/internal/domain"
)

// snapshotKey is the Redis key the dashboard snapshot is cached under.
const snapshotKey = "dashboard:snapshot"

// SnapshotCache caches the most recent dashboard snapshot in Redis.
//
// The server stays the single source of truth: any mutation invalidates the
// cached snapshot (DEL) and the next read reloads it from upstream. A nil
// cache or nil Redis client degrades to a pure miss/no-op, so the rest of
// the code never branches on whether caching is configured.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewSnapshotCache constructs a SnapshotCache. rdb may be nil to disable
// caching entirely.
func NewSnapshotCache(rdb *redis.Client, ttl time.Duration, log *slog.Logger) *SnapshotCache {
	if log == nil {
		log = slog.Default()
	}
	return &SnapshotCache{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached snapshot and true on a hit. Redis failures are
// logged and reported as misses; the cache must never make a read fail.
func (c *SnapshotCache) Get(ctx context.Context) (domain.Snapshot, bool) {
	if c == nil || c.rdb == nil {
		return domain.Snapshot{}, false
	}
	raw, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("snapshot cache get failed", "error", err)
		}
		return domain.Snapshot{}, false
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		c.log.Warn("snapshot cache held malformed data", "error", err)
		return domain.Snapshot{}, false
	}
	return snap, true
}

// Set stores the snapshot with the configured TTL. Best-effort.
func (c *SnapshotCache) Set(ctx context.Context, snap domain.Snapshot) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		c.log.Warn("snapshot cache encode failed", "error", err)
		return
	}
	// Store as a string so the value round-trips the same way it is read
	// back with Bytes.
	if err := c.rdb.Set(ctx, snapshotKey, string(raw), c.ttl).Err(); err != nil {
		c.log.Warn("snapshot cache set failed", "error", err)
	}
}

// Invalidate drops the cached snapshot. Best-effort.
func (c *SnapshotCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, snapshotKey).Err(); err != nil {
		c.log.Warn("snapshot cache invalidate failed", "error", err)
	}
}
