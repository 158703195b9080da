package service

import (
	"context"
	"sync"
	"time"
)

// AutoLock fires a callback after a period without Touch calls. It is armed
// while the vault is unlocked and fully stopped otherwise.
type AutoLock struct {
	timeout time.Duration
	onFire  func()

	mu     sync.Mutex
	cancel context.CancelFunc
	touch  chan struct{}
	wg     sync.WaitGroup
}

// NewAutoLock creates an idle monitor. A non-positive timeout falls back
// to two minutes.
func NewAutoLock(timeout time.Duration, onFire func()) *AutoLock {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &AutoLock{timeout: timeout, onFire: onFire}
}

// Arm (re)starts the timer. Any previous timer goroutine is stopped first.
func (a *AutoLock) Arm() {
	a.Disarm()

	a.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	touch := make(chan struct{}, 1)
	a.cancel = cancel
	a.touch = touch
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		fired := a.wait(ctx, touch)
		a.wg.Done()
		if fired {
			a.onFire()
		}
	}()
}

func (a *AutoLock) wait(ctx context.Context, touch <-chan struct{}) bool {
	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-touch:
			timer.Reset(a.timeout)
		case <-timer.C:
			a.mu.Lock()
			// a concurrent Disarm already won
			if ctx.Err() != nil {
				a.mu.Unlock()
				return false
			}
			a.cancel()
			a.cancel, a.touch = nil, nil
			a.mu.Unlock()
			return true
		}
	}
}

// Touch postpones the timer. It is a no-op while disarmed.
func (a *AutoLock) Touch() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.touch == nil {
		return
	}
	select {
	case a.touch <- struct{}{}:
	default:
	}
}

// Disarm stops the timer and waits for its goroutine to exit. Safe to call
// when not armed and from the onFire callback.
func (a *AutoLock) Disarm() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	a.cancel, a.touch = nil, nil
	a.mu.Unlock()

	a.wg.Wait()
}

// Armed reports whether the timer is running.
func (a *AutoLock) Armed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}
