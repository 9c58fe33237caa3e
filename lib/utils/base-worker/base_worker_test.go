package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("runs until context cancelled", func(t *testing.T) {
		var calls atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		w := NewInstance("test", 0, 5*time.Millisecond)
		done := make(chan struct{})
		go func() {
			w.Run(ctx, func(ctx context.Context) {
				calls.Add(1)
			})
			close(done)
		}()
		require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker not stopped")
		}
	})
	t.Run("panic does not stop worker", func(t *testing.T) {
		var calls atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		w := NewInstance("test", 0, 5*time.Millisecond)
		go w.Run(ctx, func(ctx context.Context) {
			if calls.Add(1) == 1 {
				panic("boom")
			}
		})
		require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	})
}
