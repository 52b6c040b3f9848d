package config

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_LoadsOnceUnderConcurrentAccess(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	store := &Store{load: func(Options) (*Config, error) {
		calls.Add(1)
		<-release
		return &Config{botToken: "token", serverID: 1}, nil
	}}

	const callers = 16
	results := make([]*Config, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg, err := store.Get()
			if err != nil {
				t.Errorf("Get returned error: %v", err)
				return
			}
			results[i] = cfg
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("load called %d times, want 1", got)
	}
	for i, cfg := range results {
		if cfg != results[0] {
			t.Fatalf("caller %d got %p, want shared %p", i, cfg, results[0])
		}
	}

	again, _ := store.Get()
	if again != results[0] {
		t.Fatalf("second Get returned a different Config")
	}
}

func TestStore_CachesFailure(t *testing.T) {
	var calls atomic.Int32
	want := &ConfigurationError{Key: "BOT_TOKEN", Err: errors.New("required key is missing")}
	store := &Store{load: func(Options) (*Config, error) {
		calls.Add(1)
		return nil, want
	}}

	for i := 0; i < 3; i++ {
		if _, err := store.Get(); !errors.Is(err, ErrConfiguration) {
			t.Fatalf("Get error = %v, want ErrConfiguration", err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("load called %d times, want 1", got)
	}
}

func TestStore_MustGetPanicsOnError(t *testing.T) {
	store := &Store{load: func(Options) (*Config, error) {
		return nil, &ConfigurationError{Key: "SERVER_ID", Err: errors.New("bad")}
	}}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustGet did not panic")
		}
	}()
	store.MustGet()
}

func TestNewStore_ReadsFromOptions(t *testing.T) {
	path := writeEnv(t, t.TempDir(), "BOT_TOKEN=token\nSERVER_ID=3\n")
	store := NewStore(Options{Path: path, SkipProcessEnv: true})

	cfg, err := store.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if cfg.ServerID() != 3 {
		t.Fatalf("ServerID = %d, want 3", cfg.ServerID())
	}
}
