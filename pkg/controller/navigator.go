package controller

import (
	"context"
	"sync"
	"time"
)

// Navigator performs the redirect once a reset succeeded.
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, target string) error

// Navigate calls f.
func (f NavigatorFunc) Navigate(ctx context.Context, target string) error {
	return f(ctx, target)
}

// RecordingNavigator stores every target it is asked to visit. Front ends
// that delegate the redirect elsewhere (for example to the browser) use it to
// learn the destination.
type RecordingNavigator struct {
	mu      sync.Mutex
	targets []string
}

// Navigate records target.
func (r *RecordingNavigator) Navigate(_ context.Context, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets = append(r.targets, target)
	return nil
}

// Targets returns the recorded targets in order.
func (r *RecordingNavigator) Targets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.targets...)
}

// Last returns the most recent target, or "".
func (r *RecordingNavigator) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.targets) == 0 {
		return ""
	}
	return r.targets[len(r.targets)-1]
}

// Clock provides timers.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
