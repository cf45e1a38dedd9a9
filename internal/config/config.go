// Package config loads runtime settings for the reset form binaries.
//
// Values come from an optional JSON or YAML file and from environment
// variables, with the environment taking precedence. The resulting Config is
// passed explicitly to constructors; nothing reads the environment later.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Defaults applied when neither the file nor the environment provide a value.
const (
	DefaultSuccessDelay   = 3 * time.Second
	DefaultRedirectDelay  = 2 * time.Second
	DefaultRequestTimeout = 15 * time.Second
	DefaultListenAddr     = ":8080"
	DefaultStubAddr       = ":8090"
	DefaultRedirectTarget = "https://www.penguinrandomhouse.com/books/"
)

// Config controls the reset form front ends and the stub endpoint.
//
// The redirect target has no environment variable: it is fixed unless a config
// file overrides it.
type Config struct {
	BaseURL        string        `env:"RESETFORM_BASE_API_URL"`
	RedirectTarget string
	SuccessDelay   time.Duration `env:"RESETFORM_SUCCESS_DELAY"`
	RedirectDelay  time.Duration `env:"RESETFORM_REDIRECT_DELAY"`
	RequestTimeout time.Duration `env:"RESETFORM_REQUEST_TIMEOUT"`
	ListenAddr     string        `env:"RESETFORM_LISTEN_ADDR"`
	StubAddr       string        `env:"RESETFORM_STUB_ADDR"`
	Theme          Theme
}

// Theme carries the web front end presentation tokens.
type Theme struct {
	Name       string            `yaml:"name"       json:"name"`
	Variant    string            `yaml:"variant"    json:"variant"`
	Tokens     map[string]string `yaml:"tokens"     json:"tokens"`
	Stylesheet string            `yaml:"stylesheet" json:"stylesheet"`
}

// Default returns a Config populated with defaults only.
func Default() Config {
	return Config{
		RedirectTarget: DefaultRedirectTarget,
		SuccessDelay:   DefaultSuccessDelay,
		RedirectDelay:  DefaultRedirectDelay,
		RequestTimeout: DefaultRequestTimeout,
		ListenAddr:     DefaultListenAddr,
		StubAddr:       DefaultStubAddr,
	}
}

// Load reads path (when non-empty), overlays the environment, and validates
// the result.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read is Load without validation. The stub endpoint uses it since it has no
// use for the base URL.
func Read(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decodeFile(data, path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Validate reports configuration that cannot be used.
func (c Config) Validate() error {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		return errors.New("config: RESETFORM_BASE_API_URL is required")
	}
	if err := checkURL("base url", base); err != nil {
		return err
	}
	if err := checkURL("redirect target", c.RedirectTarget); err != nil {
		return err
	}
	if c.SuccessDelay < 0 || c.RedirectDelay < 0 {
		return errors.New("config: delays must not be negative")
	}
	if c.RequestTimeout < 0 {
		return errors.New("config: request timeout must not be negative")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.RedirectTarget) == "" {
		c.RedirectTarget = DefaultRedirectTarget
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.StubAddr == "" {
		c.StubAddr = DefaultStubAddr
	}
}

func checkURL(label, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", label, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("config: %s %q must use http or https", label, raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("config: %s %q has no host", label, raw)
	}
	return nil
}
