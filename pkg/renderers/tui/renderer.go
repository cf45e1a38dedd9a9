// Package tui drives the password reset form from a terminal. Prompts are
// served by a PromptDriver (survey by default) and the submission itself is
// delegated to a controller, so the terminal flow only decides what to ask
// and what to print.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-resetform/pkg/controller"
	"github.com/goliatone/go-resetform/pkg/model"
)

// FormController is the subset of *controller.Controller the renderer needs.
type FormController interface {
	UpdateField(name model.FieldName, value string) error
	Submit(ctx context.Context) error
	Snapshot() controller.Snapshot
}

// Renderer runs the interactive form.
type Renderer struct {
	driver     PromptDriver
	out        io.Writer
	surveyOpts []survey.AskOpt
	theme      Theme

	mu         sync.Mutex
	lastStatus model.Status
}

// New constructs a TUI renderer. Without WithPromptDriver, prompts go through
// survey and messages are printed to stdout.
func New(options ...Option) *Renderer {
	r := &Renderer{
		theme:      DefaultTheme,
		lastStatus: model.StatusIdle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.out == nil {
		r.out = defaultOutput()
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out, r.surveyOpts...)
	}
	return r
}

// Observe prints status changes. Register it with controller.WithObserver so
// the loading indicator and outcome messages appear while Submit runs.
func (r *Renderer) Observe(snap controller.Snapshot) {
	r.mu.Lock()
	changed := snap.Status != r.lastStatus
	r.lastStatus = snap.Status
	r.mu.Unlock()
	if !changed {
		return
	}

	ctx := context.Background()
	switch snap.Status {
	case model.StatusLoading:
		_ = r.driver.Info(ctx, r.theme.InfoPrefix+r.theme.LoadingText)
	case model.StatusSuccess:
		_ = r.driver.Info(ctx, r.theme.InfoPrefix+snap.SuccessMessage)
	case model.StatusFailed:
		_ = r.driver.Info(ctx, r.theme.ErrorPrefix+snap.BackendMessage)
	}
}

// Navigate satisfies controller.Navigator by showing the redirect target.
func (r *Renderer) Navigate(ctx context.Context, target string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+"Continue at "+target)
}

// Run prompts for every field and submits until the reset succeeds, the user
// aborts, or the user declines to retry a failed submission. After a
// validation failure only the offending fields are asked again.
func (r *Renderer) Run(ctx context.Context, ctrl FormController) error {
	if ctrl == nil {
		return errors.New("tui: controller is required")
	}
	if err := r.driver.Info(ctx, model.SubmitLabel); err != nil {
		return err
	}

	pending := model.FieldNames
	for {
		if err := r.promptFields(ctx, ctrl, pending); err != nil {
			return err
		}

		err := ctrl.Submit(ctx)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, controller.ErrInvalid):
			pending = r.reportValidation(ctx, ctrl.Snapshot().Errors)
			continue
		case errors.Is(err, controller.ErrInFlight),
			errors.Is(err, controller.ErrNavigate),
			ctx.Err() != nil:
			return err
		}

		retry, confirmErr := r.driver.Confirm(ctx, ConfirmConfig{
			Message: r.theme.RetryQuestion,
			Default: true,
		})
		if confirmErr != nil {
			return confirmErr
		}
		if !retry {
			return fmt.Errorf("%w: %w", ErrGaveUp, err)
		}
		pending = model.FieldNames
	}
}

func (r *Renderer) promptFields(ctx context.Context, ctrl FormController, names []model.FieldName) error {
	wanted := make(map[model.FieldName]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	current := ctrl.Snapshot().Form
	for _, field := range model.Fields() {
		if _, ok := wanted[field.Name]; !ok {
			continue
		}

		var (
			value string
			err   error
		)
		if field.Secret {
			value, err = r.driver.Password(ctx, InputConfig{
				Message: field.Label,
				Help:    field.Placeholder,
			})
		} else {
			def, _ := current.Get(field.Name)
			value, err = r.driver.Input(ctx, InputConfig{
				Message: field.Label,
				Default: def,
				Help:    field.Placeholder,
			})
		}
		if err != nil {
			return err
		}
		if err := ctrl.UpdateField(field.Name, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) reportValidation(ctx context.Context, errs model.ValidationErrors) []model.FieldName {
	var pending []model.FieldName
	for _, field := range model.Fields() {
		msg := errs.For(field.Name)
		if msg == "" {
			continue
		}
		_ = r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, field.Label, msg))
		pending = append(pending, field.Name)
	}
	return pending
}
