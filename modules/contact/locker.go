package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultLockTTL bounds how long a crashed submission can hold its lock.
const DefaultLockTTL = 30 * time.Second

// Locker guards against concurrent submissions for the same key.
// Acquire returns ErrSubmissionInProgress while the key is held and a token
// that must be passed to Release.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, err error)
	Release(ctx context.Context, key, token string) error
}

// MemoryLocker is a process-local Locker.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]memoryLock
	now   func() time.Time
}

type memoryLock struct {
	token     string
	expiresAt time.Time
}

// MemoryLockerOption configures a MemoryLocker.
type MemoryLockerOption func(*MemoryLocker)

// WithLockerClock replaces time.Now, mainly for tests.
func WithLockerClock(now func() time.Time) MemoryLockerOption {
	return func(l *MemoryLocker) {
		if now != nil {
			l.now = now
		}
	}
}

// NewMemoryLocker creates an empty in-memory locker.
func NewMemoryLocker(opts ...MemoryLockerOption) *MemoryLocker {
	l := &MemoryLocker{locks: make(map[string]memoryLock), now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, held := range l.locks {
		if !now.Before(held.expiresAt) {
			delete(l.locks, k)
		}
	}
	if _, ok := l.locks[key]; ok {
		return "", ErrSubmissionInProgress
	}

	token := uuid.NewString()
	l.locks[key] = memoryLock{token: token, expiresAt: now.Add(ttl)}
	return token, nil
}

// Release drops the lock if token still owns it. Releasing an expired or
// foreign lock is a no-op.
func (l *MemoryLocker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if held, ok := l.locks[key]; ok && held.token == token {
		delete(l.locks, key)
	}
	return nil
}

const redisLockPrefix = "contactform:submit:"

// Deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker shares submission locks between instances using SET NX.
type RedisLocker struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisLocker creates a locker backed by client.
func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client, prefix: redisLockPrefix}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.prefix+key, token, ttl).Result()
	if err != nil {
		return "", errors.Join(ErrLockUnavailable, err)
	}
	if !ok {
		return "", ErrSubmissionInProgress
	}
	return token, nil
}

func (l *RedisLocker) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil {
		return errors.Join(ErrLockUnavailable, err)
	}
	return nil
}
