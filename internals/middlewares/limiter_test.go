package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftlink_backend/internals/constants"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	l := NewMemoryLimiter()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "k", 2, time.Minute))
	assert.True(t, l.Allow(ctx, "k", 2, time.Minute))
	assert.False(t, l.Allow(ctx, "k", 2, time.Minute))
	assert.True(t, l.Allow(ctx, "other", 2, time.Minute))

	now = now.Add(61 * time.Second)
	assert.True(t, l.Allow(ctx, "k", 2, time.Minute))
}

func TestMemoryLimiter_DropsExpiredBuckets(t *testing.T) {
	l := NewMemoryLimiter()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		assert.True(t, l.Allow(ctx, k, 1, 10*time.Second))
	}
	assert.Len(t, l.buckets, 3)

	now = now.Add(2 * time.Minute)
	assert.True(t, l.Allow(ctx, "d", 1, 10*time.Second))
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "d")
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLimiter(client, NewMemoryLimiter())
	require.NotNil(t, l)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, "ratelimit:flag:user:1", 3, time.Minute))
	}
	assert.False(t, l.Allow(ctx, "ratelimit:flag:user:1", 3, time.Minute))
	assert.True(t, mr.Exists("ratelimit:flag:user:1"))

	mr.FastForward(time.Minute + time.Second)
	assert.True(t, l.Allow(ctx, "ratelimit:flag:user:1", 3, time.Minute))
}

func TestRedisLimiter_FallsBackWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLimiter(client, NewMemoryLimiter())
	mr.Close()

	ctx := context.Background()
	assert.True(t, l.Allow(ctx, "k", 1, time.Minute))
	assert.False(t, l.Allow(ctx, "k", 1, time.Minute))
}

func TestNewLimiter_PicksBackend(t *testing.T) {
	_, isMem := NewLimiter(nil).(*MemoryLimiter)
	assert.True(t, isMem)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	_, isRedis := NewLimiter(client).(*RedisLimiter)
	assert.True(t, isRedis)
}

func TestActorRateLimit_KeysByActor(t *testing.T) {
	app := fiber.New()
	userA := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleStudent}
	userB := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleStudent}

	app.Post("/flag", func(c *fiber.Ctx) error {
		if c.Get("X-User") == "b" {
			helperAuth.SetActor(c, userB)
		} else {
			helperAuth.SetActor(c, userA)
		}
		return c.Next()
	}, ActorRateLimit(NewMemoryLimiter(), "flag", 1, time.Hour), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/flag", nil)
		req.Header.Set("X-User", user)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusNoContent, send("a"))
	assert.Equal(t, http.StatusTooManyRequests, send("a"))
	assert.Equal(t, http.StatusNoContent, send("b"))
}
