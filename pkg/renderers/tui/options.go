package tui

import (
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// Theme captures optional formatting hints applied when printing messages.
// Keep minimal to avoid coupling form logic to ANSI specifics.
type Theme struct {
	InfoPrefix    string
	ErrorPrefix   string
	LoadingText   string
	RetryQuestion string
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{
	InfoPrefix:    "",
	ErrorPrefix:   "! ",
	LoadingText:   "Resetting password...",
	RetryQuestion: "Try again?",
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints informational messages.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		if out != nil {
			r.out = out
		}
	}
}

// WithSurveyOptions forwards ask options (custom stdio, icons) to the
// default survey driver.
func WithSurveyOptions(opts ...survey.AskOpt) Option {
	return func(r *Renderer) {
		r.surveyOpts = append(r.surveyOpts, opts...)
	}
}

// WithTheme applies message prefixes and texts. Empty fields keep defaults.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		if theme.InfoPrefix != "" {
			r.theme.InfoPrefix = theme.InfoPrefix
		}
		if theme.ErrorPrefix != "" {
			r.theme.ErrorPrefix = theme.ErrorPrefix
		}
		if theme.LoadingText != "" {
			r.theme.LoadingText = theme.LoadingText
		}
		if theme.RetryQuestion != "" {
			r.theme.RetryQuestion = theme.RetryQuestion
		}
	}
}

func defaultOutput() io.Writer {
	return os.Stdout
}
