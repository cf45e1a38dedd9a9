package web

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	// DefaultThemeName names the built-in manifest.
	DefaultThemeName = "resetform"
	// StylesheetAsset is the asset key resolved for the page stylesheet.
	StylesheetAsset = "web.stylesheet"
	// AssetPrefix is where Handler serves the embedded assets.
	AssetPrefix = "/assets"
)

// DefaultManifest returns the built-in theme: the embedded stylesheet plus the
// tokens it reads as CSS variables.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"color-accent":   "#d6001c",
			"color-error":    "#b00020",
			"color-success":  "#1b7f3b",
			"color-surface":  "#ffffff",
			"color-text":     "#1f1f1f",
			"radius-control": "4px",
		},
		Assets: theme.Assets{
			Prefix: AssetPrefix,
			Files: map[string]string{
				StylesheetAsset: "resetform.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"color-surface": "#121212",
					"color-text":    "#f1f1f1",
				},
			},
		},
	}
}

// ThemeSettings overrides parts of the default manifest.
type ThemeSettings struct {
	Name       string
	Variant    string
	Tokens     map[string]string
	Stylesheet string
}

// ResolveTheme applies settings to the default manifest, registers it with a
// go-theme registry to validate it, and returns the renderer configuration.
func ResolveTheme(settings ThemeSettings) (*theme.RendererConfig, error) {
	manifest := DefaultManifest()
	if name := strings.TrimSpace(settings.Name); name != "" {
		manifest.Name = name
	}
	for key, value := range settings.Tokens {
		manifest.Tokens[strings.TrimSpace(key)] = value
	}
	if sheet := strings.TrimSpace(settings.Stylesheet); sheet != "" {
		manifest.Assets.Files[StylesheetAsset] = sheet
	}

	variant := strings.TrimSpace(settings.Variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("web: theme %q has no variant %q", manifest.Name, variant)
		}
	}

	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("web: register theme %q: %w", manifest.Name, err)
	}
	return NewThemeConfig(manifest, variant), nil
}

// NewThemeConfig flattens manifest and the named variant into a renderer
// configuration. Variant tokens and asset files win over the base manifest.
func NewThemeConfig(manifest *theme.Manifest, variant string) *theme.RendererConfig {
	if manifest == nil {
		return nil
	}
	tokens := copyStringMap(manifest.Tokens)
	files := copyStringMap(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix
	partials := copyStringMap(manifest.Templates)

	if v, ok := manifest.Variants[variant]; ok {
		tokens = mergeStringMap(tokens, v.Tokens)
		files = mergeStringMap(files, v.Assets.Files)
		partials = mergeStringMap(partials, v.Templates)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}

// themeView is the template-facing projection of a renderer config.
type themeView struct {
	Name         string `json:"name"`
	Variant      string `json:"variant"`
	CSSVarsStyle string `json:"css_vars_style"`
	Stylesheet   string `json:"stylesheet"`
}

func buildThemeView(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	view := themeView{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		view.Stylesheet = cfg.AssetURL(StylesheetAsset)
	}
	return view
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	return b.String()
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(base, overlay map[string]string) map[string]string {
	if len(overlay) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(overlay))
	}
	for key, value := range overlay {
		base[key] = value
	}
	return base
}
