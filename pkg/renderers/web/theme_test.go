package web

import (
	"testing"
)

func TestResolveTheme_DefaultsAndOverrides(t *testing.T) {
	cfg, err := ResolveTheme(ThemeSettings{
		Tokens:     map[string]string{"color-accent": "#000000"},
		Stylesheet: "https://cdn.example.com/site.css",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Theme != DefaultThemeName {
		t.Fatalf("unexpected theme %q", cfg.Theme)
	}
	if cfg.CSSVars["--color-accent"] != "#000000" {
		t.Fatalf("token override not applied: %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL(StylesheetAsset); got != "https://cdn.example.com/site.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", got)
	}
}

func TestResolveTheme_Variant(t *testing.T) {
	cfg, err := ResolveTheme(ThemeSettings{Variant: "dark"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Variant != "dark" || cfg.Tokens["color-surface"] != "#121212" {
		t.Fatalf("variant tokens not merged: %+v", cfg.Tokens)
	}
	if cfg.Tokens["color-accent"] != "#d6001c" {
		t.Fatalf("base tokens lost")
	}
	if got := cfg.AssetURL(StylesheetAsset); got != "/assets/resetform.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}

	if _, err := ResolveTheme(ThemeSettings{Variant: "neon"}); err == nil {
		t.Fatalf("expected unknown variant error")
	}
}

func TestCSSVarsStyle_Sorted(t *testing.T) {
	got := cssVarsStyle(map[string]string{"--b": "2", "--a": "1"})
	if got != "--a: 1; --b: 2;" {
		t.Fatalf("unexpected style %q", got)
	}
}
