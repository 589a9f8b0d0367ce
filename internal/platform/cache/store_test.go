package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	store := NewStoreWithClock(10*time.Minute, clock)
	ctx := context.Background()

	store.Set(ctx, "k", "v")
	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatal("get immediately after set should hit")
	}

	advance(9 * time.Minute)
	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatal("get inside ttl window should hit")
	}

	advance(2 * time.Minute)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("get after ttl elapsed should miss")
	}
}

func TestStore_FlushDropsEverything(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "a", 1)
	store.Set(ctx, "b", 2)
	store.Flush(ctx)

	if _, ok := store.Get(ctx, "a"); ok {
		t.Fatal("get after flush should miss")
	}
	if _, ok := store.Get(ctx, "b"); ok {
		t.Fatal("get after flush should miss")
	}
}

func TestStore_Age(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	store := NewStoreWithClock(time.Hour, clock)
	ctx := context.Background()

	if _, ok := store.Age(ctx, "k"); ok {
		t.Fatal("age of absent key should report not found")
	}

	store.Set(ctx, "k", "v")
	mu.Lock()
	now = now.Add(15 * time.Minute)
	mu.Unlock()

	age, ok := store.Age(ctx, "k")
	if !ok {
		t.Fatal("age of live key should be reported")
	}
	if age != 15*time.Minute {
		t.Fatalf("unexpected age: got=%s want=15m", age)
	}
}

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
