package middlewares

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) bool
}

/* =========================
   In-memory fixed window
========================= */

// bucket kedaluwarsa disapu paling sering sekali per memorySweepEvery
const memorySweepEvery = time.Minute

type MemoryLimiter struct {
	mu        sync.Mutex
	now       func() time.Time
	buckets   map[string]*rateBucket
	lastSweep time.Time
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{now: time.Now, buckets: make(map[string]*rateBucket)}
}

func (r *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweep(now)
	bucket, ok := r.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		r.buckets[key] = &rateBucket{count: 1, windowEnd: now.Add(window)}
		return true
	}
	if bucket.count >= limit {
		return false
	}
	bucket.count++
	return true
}

// sweep membuang bucket yang window-nya sudah lewat; dipanggil dengan mu terkunci.
func (r *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < memorySweepEvery {
		return
	}
	r.lastSweep = now
	for k, b := range r.buckets {
		if now.After(b.windowEnd) {
			delete(r.buckets, k)
		}
	}
}

/* =========================
   Redis fixed window
========================= */

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

type RedisLimiter struct {
	client   *redis.Client
	script   *redis.Script
	fallback Limiter
}

// NewRedisLimiter: kalau Redis error, keputusan diambil dari fallback (memori).
func NewRedisLimiter(client *redis.Client, fallback Limiter) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client:   client,
		script:   redis.NewScript(rateLimitScript),
		fallback: fallback,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		if l.fallback != nil {
			return l.fallback.Allow(ctx, key, limit, window)
		}
		return true
	}
	return allowed == 1
}

// NewLimiter memilih Redis kalau client tersedia, selain itu memori.
func NewLimiter(client *redis.Client) Limiter {
	mem := NewMemoryLimiter()
	if rl := NewRedisLimiter(client, mem); rl != nil {
		return rl
	}
	return mem
}
