// Package resetform wires the password reset form packages together from a
// loaded configuration. The binaries under cmd/ are thin wrappers around it.
package resetform

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/goliatone/go-resetform/internal/config"
	"github.com/goliatone/go-resetform/pkg/contract"
	"github.com/goliatone/go-resetform/pkg/controller"
	"github.com/goliatone/go-resetform/pkg/renderers/web"
	"github.com/goliatone/go-resetform/pkg/submit"
)

// NewSubmitClient builds the endpoint client with the configured timeout.
func NewSubmitClient(cfg config.Config, logger *log.Logger) (*submit.Client, error) {
	options := []submit.Option{
		submit.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	}
	if logger != nil {
		options = append(options, submit.WithLogger(logger))
	}
	return submit.New(cfg.BaseURL, options...)
}

// ControllerOptions returns the controller options implied by cfg. Callers can
// append their own to override them.
func ControllerOptions(cfg config.Config, logger *log.Logger) []controller.Option {
	options := []controller.Option{
		controller.WithSuccessDelay(cfg.SuccessDelay),
		controller.WithRedirectDelay(cfg.RedirectDelay),
		controller.WithRedirectTarget(cfg.RedirectTarget),
	}
	if logger != nil {
		options = append(options, controller.WithLogger(logger))
	}
	return options
}

// NewController builds a controller that submits to the configured endpoint.
func NewController(cfg config.Config, logger *log.Logger, extra ...controller.Option) (*controller.Controller, error) {
	client, err := NewSubmitClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("resetform: submit client: %w", err)
	}
	options := append(ControllerOptions(cfg, logger), extra...)
	return controller.New(client, options...)
}

// NewWebHandler builds the HTML front end. Every POST gets its own controller.
func NewWebHandler(cfg config.Config, logger *log.Logger) (http.Handler, error) {
	themeCfg, err := web.ResolveTheme(web.ThemeSettings{
		Name:       cfg.Theme.Name,
		Variant:    cfg.Theme.Variant,
		Tokens:     cfg.Theme.Tokens,
		Stylesheet: cfg.Theme.Stylesheet,
	})
	if err != nil {
		return nil, err
	}
	renderer, err := web.New(
		web.WithTheme(themeCfg),
		web.WithRedirectDelay(cfg.RedirectDelay),
	)
	if err != nil {
		return nil, err
	}

	client, err := NewSubmitClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("resetform: submit client: %w", err)
	}
	base := ControllerOptions(cfg, logger)
	factory := func(options ...controller.Option) (*controller.Controller, error) {
		all := make([]controller.Option, 0, len(base)+len(options))
		all = append(all, base...)
		all = append(all, options...)
		return controller.New(client, all...)
	}

	var handlerOpts []web.HandlerOption
	if logger != nil {
		handlerOpts = append(handlerOpts, web.WithHandlerLogger(logger))
	}
	return web.NewHandler(renderer, factory, handlerOpts...)
}

// NewStubHandler loads the embedded contract and returns the stub endpoint.
func NewStubHandler(ctx context.Context, logger *log.Logger, rejected ...string) (http.Handler, error) {
	c, err := contract.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("resetform: load contract: %w", err)
	}
	options := []contract.StubOption{contract.WithRejectedPasswords(rejected...)}
	if logger != nil {
		options = append(options, contract.WithStubLogger(logger))
	}
	return contract.NewStubHandler(c, options...), nil
}
