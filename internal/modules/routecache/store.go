// README: Route cache backed by Redis; TTL expiry plus a write-recency cap.
package routecache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	entryKeyPrefix = "routecache:entry:%s"
	recencyKey     = "routecache:recent"
)

type Store struct {
	redis *redis.Client
	ttl   time.Duration
	max   int
}

// NewStore caps the cache at max entries with the given per-entry TTL.
// Eviction keeps the most-recently-written entries, not the most-recently
// read ones: reads never touch the recency index.
func NewStore(rdb *redis.Client, ttl time.Duration, max int) *Store {
	if max <= 0 {
		max = 20
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{redis: rdb, ttl: ttl, max: max}
}

// Put stores the entry under its address-pair key and trims the cache back
// to the cap, dropping the least recently written entries.
func (s *Store) Put(ctx context.Context, e Entry) error {
	if e.CachedAt.IsZero() {
		e.CachedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("route cache put: marshal: %w", err)
	}

	key := Key(e.Pickup.Address, e.Destination.Address)
	pipe := s.redis.Pipeline()
	pipe.Set(ctx, entryKey(key), payload, s.ttl)
	pipe.ZAdd(ctx, recencyKey, redis.Z{Score: float64(e.CachedAt.UnixNano()), Member: key})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("route cache put: %w", err)
	}

	return s.trim(ctx)
}

// Get returns the cached entry for the address pair, or ok=false on a miss.
// An expired entry is a miss even if Redis has not reaped it yet.
func (s *Store) Get(ctx context.Context, pickupAddr, destAddr string) (Entry, bool, error) {
	key := Key(pickupAddr, destAddr)
	val, err := s.redis.Get(ctx, entryKey(key)).Result()
	if err == redis.Nil {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("route cache get: %w", err)
	}

	var e Entry
	if err := json.Unmarshal([]byte(val), &e); err != nil {
		// A corrupt entry is just a miss; the next write overwrites it.
		return Entry{}, false, nil
	}
	if time.Since(e.CachedAt) > s.ttl {
		return Entry{}, false, nil
	}
	return e, true, nil
}

// Size reports how many entries the recency index currently tracks.
func (s *Store) Size(ctx context.Context) (int, error) {
	n, err := s.redis.ZCard(ctx, recencyKey).Result()
	if err != nil {
		return 0, fmt.Errorf("route cache size: %w", err)
	}
	return int(n), nil
}

// trim drops the oldest-written entries beyond the cap.
func (s *Store) trim(ctx context.Context) error {
	n, err := s.redis.ZCard(ctx, recencyKey).Result()
	if err != nil {
		return fmt.Errorf("route cache trim: %w", err)
	}
	excess := int(n) - s.max
	if excess <= 0 {
		return nil
	}

	oldest, err := s.redis.ZRange(ctx, recencyKey, 0, int64(excess-1)).Result()
	if err != nil {
		return fmt.Errorf("route cache trim: %w", err)
	}

	pipe := s.redis.Pipeline()
	for _, key := range oldest {
		pipe.Del(ctx, entryKey(key))
		pipe.ZRem(ctx, recencyKey, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("route cache trim: %w", err)
	}
	return nil
}

func entryKey(key string) string {
	return fmt.Sprintf(entryKeyPrefix, key)
}
