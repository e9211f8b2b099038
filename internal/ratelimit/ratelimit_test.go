package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelry-production-service/internal/auth"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/logger"
)

type fakeCounter struct {
	mu      sync.Mutex
	counts  map[string]int64
	ttls    map[string]time.Duration
	failErr error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestLimiter_Window(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeCounter()
	l := NewLimiter(rdb, 3, time.Minute)
	l.now = fixedClock(time.Date(2026, 4, 1, 10, 0, 15, 0, time.UTC))

	for i := 0; i < 3; i++ {
		info, err := l.Allow(ctx, "user:5")
		require.NoError(t, err)
		assert.True(t, info.Allowed)
		assert.Equal(t, 2-i, info.Remaining)
	}

	info, err := l.Allow(ctx, "user:5")
	require.NoError(t, err)
	assert.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 45*time.Second, info.RetryAfter)

	other, err := l.Allow(ctx, "user:6")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "clients are counted separately")

	l.now = fixedClock(time.Date(2026, 4, 1, 10, 1, 0, 0, time.UTC))
	next, err := l.Allow(ctx, "user:5")
	require.NoError(t, err)
	assert.True(t, next.Allowed, "a new window starts from zero")

	assert.Len(t, rdb.ttls, 3)
	for _, ttl := range rdb.ttls {
		assert.Equal(t, time.Minute+time.Second, ttl)
	}
}

func TestMiddleware(t *testing.T) {
	rdb := newFakeCounter()
	l := NewLimiter(rdb, 1, time.Minute)
	h := Middleware(l, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	user := &entity.User{ID: 5, Role: entity.RoleCaster, IsActive: true}
	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/worker/tasks", nil)
		req = req.WithContext(auth.WithUser(req.Context(), user))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := do()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"rate limit exceeded"}`, second.Body.String())
}

func TestMiddleware_FailsOpen(t *testing.T) {
	rdb := newFakeCounter()
	rdb.failErr = errors.New("dial tcp: connection refused")
	h := Middleware(NewLimiter(rdb, 1, time.Minute), logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "ip:10.1.2.3", clientID(req))

	req = req.WithContext(auth.WithUser(req.Context(), &entity.User{ID: 42, Role: entity.RoleOwner}))
	assert.Equal(t, "user:42", clientID(req))
}
