package lock

import (
	"context"
	"sync"
	"time"
)

type slot struct {
	ch   chan struct{}
	refs int
}

var (
	mu    sync.Mutex
	slots = map[string]*slot{}
)

// acquireSlot слот key вместе со счетчиком ожидающих, releaseSlot удаляет его после последнего
func acquireSlot(key string) *slot {
	mu.Lock()
	defer mu.Unlock()
	s, ok := slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		slots[key] = s
	}
	s.refs++
	return s
}

func releaseSlot(key string, s *slot) {
	mu.Lock()
	defer mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(slots, key)
	}
}

// WithDelay выполняет safeCode под блокировкой key, ожидая освобождения не дольше wait
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	s := acquireSlot(key)
	defer releaseSlot(key, s)
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case s.ch <- struct{}{}:
	case <-timer.C:
		return false, nil
	case <-ctx.Done():
		return false, nil
	}
	defer func() { <-s.ch }()
	return true, safeCode()
}
