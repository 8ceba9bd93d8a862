package overview

import (
	"context"
	"testing"
	"time"

	"dairy/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestMemoryCellLockerSerializesKey(t *testing.T) {
	l := NewMemoryCellLocker(0)
	unlock, err := l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		second, err := l.Lock(context.Background(), "k")
		if err != nil {
			t.Errorf("second lock: %v", err)
			close(acquired)
			return
		}
		close(acquired)
		second()
	}()

	select {
	case <-acquired:
		t.Fatalf("second holder acquired the key while it was held")
	case <-time.After(30 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatalf("second holder never acquired the key")
	}
}

func TestMemoryCellLockerIndependentKeys(t *testing.T) {
	l := NewMemoryCellLocker(10 * time.Millisecond)
	a, err := l.Lock(context.Background(), "a")
	if err != nil {
		t.Fatalf("lock a: %v", err)
	}
	defer a()
	b, err := l.Lock(context.Background(), "b")
	if err != nil {
		t.Fatalf("lock b while a is held: %v", err)
	}
	b()
}

func TestMemoryCellLockerTimeoutIsConflict(t *testing.T) {
	l := NewMemoryCellLocker(15 * time.Millisecond)
	unlock, err := l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	_, err = l.Lock(context.Background(), "k")
	if !utils.IsConflict(err) {
		t.Fatalf("expected conflict on timeout, got %v", err)
	}

	unlock()
	unlock() // release is idempotent
	if l.Held() != 0 {
		t.Fatalf("expected no held keys, got %d", l.Held())
	}
}

func TestMemoryCellLockerHonoursContext(t *testing.T) {
	l := NewMemoryCellLocker(0)
	unlock, err := l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Lock(ctx, "k"); !utils.IsConflict(err) {
		t.Fatalf("expected conflict for cancelled context, got %v", err)
	}
}

func newTestRedisLocker(t *testing.T) (*RedisCellLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisCellLocker(client, time.Second)
	l.Wait = 50 * time.Millisecond
	l.Retry = 5 * time.Millisecond
	return l, mr
}

func TestRedisCellLockerBusyKeyIsConflict(t *testing.T) {
	l, mr := newTestRedisLocker(t)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "c1:Morning:2024-02-10")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	if !mr.Exists("cell-lock:c1:Morning:2024-02-10") {
		t.Fatalf("expected lock key to be set")
	}

	start := time.Now()
	if _, err := l.Lock(ctx, "c1:Morning:2024-02-10"); !utils.IsConflict(err) {
		t.Fatalf("expected conflict while held, got %v", err)
	}
	if waited := time.Since(start); waited > time.Second {
		t.Fatalf("conflict took %v, longer than the wait window", waited)
	}

	unlock()
	if mr.Exists("cell-lock:c1:Morning:2024-02-10") {
		t.Fatalf("expected release to delete the lock key")
	}
	second, err := l.Lock(ctx, "c1:Morning:2024-02-10")
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	second()
}

func TestRedisCellLockerWaitsForRelease(t *testing.T) {
	l, _ := newTestRedisLocker(t)
	l.Wait = time.Second
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		unlock()
	}()

	second, err := l.Lock(ctx, "k")
	if err != nil {
		t.Fatalf("expected second lock once the first was released, got %v", err)
	}
	second()
}

func TestRedisCellLockerStaleReleaseKeepsNewHolder(t *testing.T) {
	l, mr := newTestRedisLocker(t)
	ctx := context.Background()

	stale, err := l.Lock(ctx, "k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	mr.FastForward(2 * time.Second)

	fresh, err := l.Lock(ctx, "k")
	if err != nil {
		t.Fatalf("lock after expiry: %v", err)
	}
	holder, err := mr.Get("cell-lock:k")
	if err != nil {
		t.Fatalf("read lock key: %v", err)
	}

	stale()
	got, err := mr.Get("cell-lock:k")
	if err != nil || got != holder {
		t.Fatalf("stale release removed the new holder's lock: %q, %v", got, err)
	}

	fresh()
	if mr.Exists("cell-lock:k") {
		t.Fatalf("expected the holder's release to delete the key")
	}
}

func TestRedisCellLockerReleaseSurvivesLostConnection(t *testing.T) {
	l, mr := newTestRedisLocker(t)
	unlock, err := l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	mr.Close()
	unlock()
	unlock()
}
