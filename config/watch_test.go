package config

import (
	"context"
	"os"
	"testing"
	"time"
)

const watchConfig = `
bench:
  messages: 1000
  symbols: [AAPL]
  mode: ring
ring:
  capacity: 64
sampler:
  capacity: 100
`

func TestWatcherReturnsOnCancel(t *testing.T) {
	path := writeTempConfig(t, watchConfig)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately
	w := Watcher{Path: path, Cooldown: time.Millisecond}
	if err := w.Start(ctx, nil); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestWatcherFailsOnMissingFile(t *testing.T) {
	w := Watcher{Path: "/nonexistent/cfg.yaml"}
	if err := w.Start(context.Background(), nil); err == nil {
		t.Fatal("expected error watching a missing file")
	}
}

func TestWatcherTriggersOnChange(t *testing.T) {
	path := writeTempConfig(t, watchConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := make(chan AppConfig, 1)
	w := Watcher{Path: path, Cooldown: time.Millisecond}
	go func() {
		_ = w.Start(ctx, func(cfg AppConfig) {
			select {
			case ch <- cfg:
			default:
			}
		})
	}()

	// give the watcher time to register before writing
	time.Sleep(50 * time.Millisecond)
	updated := `
bench:
  messages: 777
  symbols: [AAPL]
  mode: ring
ring:
  capacity: 64
sampler:
  capacity: 100
`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case cfg := <-ch:
		if cfg.Bench.Messages != 777 {
			t.Fatalf("callback got messages = %d, want 777", cfg.Bench.Messages)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected update callback")
	}
}
