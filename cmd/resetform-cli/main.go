package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/goliatone/go-resetform"
	"github.com/goliatone/go-resetform/internal/config"
	"github.com/goliatone/go-resetform/pkg/controller"
	"github.com/goliatone/go-resetform/pkg/renderers/tui"
)

func main() {
	configPath := flag.String("config", "", "optional YAML or JSON config file")
	verbose := flag.Bool("v", false, "log lifecycle tracing to stderr")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "resetform: ", log.LstdFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer := tui.New()
	ctrl, err := resetform.NewController(cfg, logger,
		controller.WithObserver(renderer.Observe),
		controller.WithNavigator(renderer),
	)
	if err != nil {
		log.Fatalf("Failed to build controller: %v", err)
	}

	if err := renderer.Run(ctx, ctrl); err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		log.Fatalf("Password reset failed: %v", err)
	}
}
