package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-resetform"
	"github.com/goliatone/go-resetform/internal/config"
)

func main() {
	configPath := flag.String("config", "", "optional YAML or JSON config file")
	reject := flag.String("reject", "", "comma separated current passwords the stub rejects")
	flag.Parse()

	cfg, err := config.Read(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var rejected []string
	for _, pw := range strings.Split(*reject, ",") {
		if pw = strings.TrimSpace(pw); pw != "" {
			rejected = append(rejected, pw)
		}
	}

	logger := log.New(os.Stderr, "resetform-stub: ", log.LstdFlags)
	handler, err := resetform.NewStubHandler(context.Background(), logger, rejected...)
	if err != nil {
		log.Fatalf("Failed to build stub: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.StubAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Printf("stub endpoint listening on %s (POST /submit)", cfg.StubAddr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Stub failed: %v", err)
	}
}
