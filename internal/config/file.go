package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with durations as strings ("3s", "2500ms") so the
// same document can be written as JSON or YAML.
type fileConfig struct {
	BaseURL        string `yaml:"baseUrl"        json:"baseUrl"`
	RedirectTarget string `yaml:"redirectTarget" json:"redirectTarget"`
	SuccessDelay   string `yaml:"successDelay"   json:"successDelay"`
	RedirectDelay  string `yaml:"redirectDelay"  json:"redirectDelay"`
	RequestTimeout string `yaml:"requestTimeout" json:"requestTimeout"`
	ListenAddr     string `yaml:"listenAddr"     json:"listenAddr"`
	StubAddr       string `yaml:"stubAddr"       json:"stubAddr"`
	Theme          Theme  `yaml:"theme"          json:"theme"`
}

func decodeFile(data []byte, source string, cfg *Config) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("config: file %s is empty", source)
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("config: parse %s: %w", source, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("config: parse %s: %w", source, err)
		}
	}

	if raw.BaseURL != "" {
		cfg.BaseURL = raw.BaseURL
	}
	if raw.RedirectTarget != "" {
		cfg.RedirectTarget = raw.RedirectTarget
	}
	if raw.ListenAddr != "" {
		cfg.ListenAddr = raw.ListenAddr
	}
	if raw.StubAddr != "" {
		cfg.StubAddr = raw.StubAddr
	}
	cfg.Theme = mergeTheme(cfg.Theme, raw.Theme)

	durations := []struct {
		name  string
		value string
		dest  *time.Duration
	}{
		{name: "successDelay", value: raw.SuccessDelay, dest: &cfg.SuccessDelay},
		{name: "redirectDelay", value: raw.RedirectDelay, dest: &cfg.RedirectDelay},
		{name: "requestTimeout", value: raw.RequestTimeout, dest: &cfg.RequestTimeout},
	}
	for _, d := range durations {
		if strings.TrimSpace(d.value) == "" {
			continue
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(d.value))
		if err != nil {
			return fmt.Errorf("config: %s in %s: %w", d.name, source, err)
		}
		*d.dest = parsed
	}
	return nil
}

func mergeTheme(base, overlay Theme) Theme {
	if overlay.Name != "" {
		base.Name = overlay.Name
	}
	if overlay.Variant != "" {
		base.Variant = overlay.Variant
	}
	if overlay.Stylesheet != "" {
		base.Stylesheet = overlay.Stylesheet
	}
	if len(overlay.Tokens) > 0 {
		merged := make(map[string]string, len(base.Tokens)+len(overlay.Tokens))
		for k, v := range base.Tokens {
			merged[k] = v
		}
		for k, v := range overlay.Tokens {
			merged[k] = v
		}
		base.Tokens = merged
	}
	return base
}
