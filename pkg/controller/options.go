package controller

import (
	"io"
	"log"
	"strings"
	"time"
)

const (
	// DefaultSuccessDelay is the pause between an accepted request and the
	// success message.
	DefaultSuccessDelay = 3000 * time.Millisecond
	// DefaultRedirectDelay is the pause between the success message and
	// navigation.
	DefaultRedirectDelay = 2000 * time.Millisecond
	// DefaultRedirectTarget is where the user lands after a successful reset.
	DefaultRedirectTarget = "https://www.penguinrandomhouse.com/books/"
)

// Option configures a Controller.
type Option func(*Controller)

// WithSuccessDelay overrides the pause before the success message. Zero or
// negative values disable it.
func WithSuccessDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.successDelay = d
	}
}

// WithRedirectDelay overrides the pause before navigation. Zero or negative
// values disable it.
func WithRedirectDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.redirectDelay = d
	}
}

// WithRedirectTarget overrides the URL handed to the navigator.
func WithRedirectTarget(target string) Option {
	return func(c *Controller) {
		if trimmed := strings.TrimSpace(target); trimmed != "" {
			c.target = trimmed
		}
	}
}

// WithNavigator sets the navigator invoked after a successful reset.
func WithNavigator(nav Navigator) Option {
	return func(c *Controller) {
		if nav != nil {
			c.navigator = nav
		}
	}
}

// WithClock replaces the timer source.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithObserver registers fn to receive a snapshot after every state change.
// Observers run on the goroutine that caused the change, outside the lock.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithLogger sets the logger used for lifecycle tracing.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
