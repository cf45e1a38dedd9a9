package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goliatone/go-resetform/pkg/model"
	"github.com/goliatone/go-resetform/pkg/submit"
	"github.com/goliatone/go-resetform/pkg/validation"
)

var (
	// ErrInvalid is returned by Submit when local validation failed. The
	// per-field messages are available through Snapshot.
	ErrInvalid = errors.New("controller: form is invalid")
	// ErrInFlight is returned by Submit while another submission is loading.
	ErrInFlight = errors.New("controller: submission already in flight")
	// ErrNavigate wraps navigator failures after a successful reset.
	ErrNavigate = errors.New("controller: navigate")
)

// Submitter sends the reset request to the remote endpoint.
type Submitter interface {
	Submit(ctx context.Context, req model.SubmitRequest) (submit.Result, error)
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Form           model.FormState
	Errors         model.ValidationErrors
	Status         model.Status
	BackendMessage string
	SuccessMessage string
	Display        model.Display
}

// Controller drives a single password reset form.
type Controller struct {
	submitter     Submitter
	navigator     Navigator
	clock         Clock
	successDelay  time.Duration
	redirectDelay time.Duration
	target        string
	observers     []func(Snapshot)
	logger        *log.Logger

	inFlight atomic.Bool

	mu             sync.Mutex
	form           model.FormState
	errors         model.ValidationErrors
	status         model.Status
	backendMessage string
	successMessage string
}

// New constructs a Controller that submits through submitter.
func New(submitter Submitter, options ...Option) (*Controller, error) {
	if submitter == nil {
		return nil, errors.New("controller: submitter is required")
	}

	c := &Controller{
		submitter:     submitter,
		navigator:     &RecordingNavigator{},
		clock:         realClock{},
		successDelay:  DefaultSuccessDelay,
		redirectDelay: DefaultRedirectDelay,
		target:        DefaultRedirectTarget,
		logger:        discardLogger(),
		status:        model.StatusIdle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// RedirectTarget returns the URL visited after a successful reset.
func (c *Controller) RedirectTarget() string {
	return c.target
}

// UpdateField stores value under name without validating it.
func (c *Controller) UpdateField(name model.FieldName, value string) error {
	c.mu.Lock()
	err := c.form.Set(name, value)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("controller: update field: %w", err)
	}
	return nil
}

// Validate checks the current values. It does not change the displayed errors.
func (c *Controller) Validate() (bool, model.ValidationErrors) {
	c.mu.Lock()
	form := c.form
	c.mu.Unlock()
	return validation.Validate(form)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Status returns the current submission status.
func (c *Controller) Status() model.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool {
	return c.inFlight.Load()
}

// Submit validates the form and, when valid, posts it. It blocks until the
// attempt reaches a terminal state: validation failure, endpoint failure, or
// success followed by navigation.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.logger.Printf("controller: submit ignored, request in flight")
		return ErrInFlight
	}
	released := false
	release := func() {
		if !released {
			released = true
			c.inFlight.Store(false)
		}
	}
	defer release()

	c.mu.Lock()
	ok, errs := validation.Validate(c.form)
	c.errors = errs
	if !ok {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return ErrInvalid
	}
	c.status = model.StatusLoading
	c.backendMessage = ""
	c.successMessage = ""
	req := c.form.Request()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	c.logger.Printf("controller: submitting reset for %q", req.Username)

	if _, err := c.submitter.Submit(ctx, req); err != nil {
		message := submit.ErrorMessage(err)
		c.transition(func() {
			c.status = model.StatusFailed
			c.backendMessage = message
		})
		c.logger.Printf("controller: submission failed: %v", err)
		return err
	}

	waitErr := c.wait(ctx, c.successDelay)
	c.transition(func() {
		c.status = model.StatusSuccess
		c.successMessage = model.SuccessMessage
	})
	release()
	if waitErr != nil {
		return waitErr
	}

	if err := c.wait(ctx, c.redirectDelay); err != nil {
		return err
	}

	c.logger.Printf("controller: redirecting to %s", c.target)
	if err := c.navigator.Navigate(ctx, c.target); err != nil {
		c.logger.Printf("controller: navigation failed: %v", err)
		return fmt.Errorf("%w: %w", ErrNavigate, err)
	}
	return nil
}

func (c *Controller) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-c.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) transition(fn func()) {
	c.mu.Lock()
	fn()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

func (c *Controller) notify(snap Snapshot) {
	for _, fn := range c.observers {
		fn(snap)
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Form:           c.form,
		Errors:         c.errors,
		Status:         c.status,
		BackendMessage: c.backendMessage,
		SuccessMessage: c.successMessage,
		Display:        model.DisplayFor(c.status, c.successMessage),
	}
}
