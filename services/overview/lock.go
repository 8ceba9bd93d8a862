package overview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dairy/models"
	"dairy/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CellLocker serializes adjustments of a single overview cell. Lock blocks
// until the key is free or ctx is done and returns an idempotent release func.
type CellLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// CellKey identifies one (customer, shift, date) cell.
func CellKey(customerID string, shift models.Shift, date string) string {
	return customerID + ":" + string(shift) + ":" + date
}

// MemoryCellLocker is a per-key mutex for a single process.
type MemoryCellLocker struct {
	Timeout time.Duration // 0 waits as long as ctx allows

	mu    sync.Mutex
	locks map[string]*cellLock
}

type cellLock struct {
	slot chan struct{}
	refs int
}

func NewMemoryCellLocker(timeout time.Duration) *MemoryCellLocker {
	return &MemoryCellLocker{
		Timeout: timeout,
		locks:   make(map[string]*cellLock),
	}
}

func (l *MemoryCellLocker) Lock(ctx context.Context, key string) (func(), error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*cellLock)
	}
	lock, ok := l.locks[key]
	if !ok {
		lock = &cellLock{slot: make(chan struct{}, 1)}
		l.locks[key] = lock
	}
	lock.refs++
	l.mu.Unlock()

	select {
	case lock.slot <- struct{}{}:
	case <-ctx.Done():
		l.release(key, lock)
		return nil, utils.NewConflictError("cell %s is busy: %v", key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lock.slot
			l.release(key, lock)
		})
	}, nil
}

func (l *MemoryCellLocker) release(key string, lock *cellLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, key)
	}
}

// Held reports how many keys currently have a holder or waiter.
func (l *MemoryCellLocker) Held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisCellLocker serializes cells across processes with SET NX PX. The TTL
// bounds how long a crashed holder can block a cell.
type RedisCellLocker struct {
	Client *redis.Client
	TTL    time.Duration
	Wait   time.Duration // total time to keep retrying
	Retry  time.Duration // pause between attempts
}

func NewRedisCellLocker(client *redis.Client, ttl time.Duration) *RedisCellLocker {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &RedisCellLocker{
		Client: client,
		TTL:    ttl,
		Wait:   ttl,
		Retry:  25 * time.Millisecond,
	}
}

func (l *RedisCellLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := "cell-lock:" + key
	token := uuid.New().String()

	ctx, cancel := context.WithTimeout(ctx, l.Wait)
	defer cancel()

	for {
		acquired, err := l.Client.SetNX(ctx, redisKey, token, l.TTL).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("failed to acquire cell lock: %w", err)
		}
		if acquired {
			var once sync.Once
			return func() {
				once.Do(func() {
					releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
					defer cancel()
					if err := unlockScript.Run(releaseCtx, l.Client, []string{redisKey}, token).Err(); err != nil {
						utils.GetLogger().Warn("failed to release cell lock",
							zap.String("key", redisKey), zap.Error(err))
					}
				})
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, utils.NewConflictError("cell %s is busy: %v", key, ctx.Err())
		case <-time.After(l.Retry):
		}
	}
}
