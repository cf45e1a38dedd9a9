package web

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-resetform/pkg/controller"
	"github.com/goliatone/go-resetform/pkg/model"
	"github.com/goliatone/go-resetform/pkg/render/template"
	"github.com/goliatone/go-resetform/pkg/render/template/gotemplate"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed assets/*
var assetsFS embed.FS

// TemplatesFS exposes the embedded templates so callers can extend them.
func TemplatesFS() fs.FS {
	return templatesFS
}

// AssetsFS exposes the embedded static assets rooted at the assets directory.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return assetsFS
	}
	return sub
}

const (
	formTemplate       = "templates/form"
	defaultTitle       = "Reset your password"
	defaultLoadingText = "Resetting password..."
	defaultAction      = "/"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplateRenderer swaps the engine used to execute templates.
func WithTemplateRenderer(tr template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if tr != nil {
			r.templates = tr
		}
	}
}

// WithTheme sets the theme used for CSS variables and the stylesheet URL.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// WithRedirectDelay sets how long the success page waits before the meta
// refresh fires. Meta refresh counts whole seconds, so partial seconds round
// up.
func WithRedirectDelay(d time.Duration) Option {
	return func(r *Renderer) {
		if d < 0 {
			d = 0
		}
		r.redirectDelay = d
	}
}

// WithTitle overrides the page title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			r.title = trimmed
		}
	}
}

// WithAction overrides the form action URL.
func WithAction(action string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(action); trimmed != "" {
			r.action = trimmed
		}
	}
}

// Renderer produces the HTML page for a form snapshot.
type Renderer struct {
	templates     template.TemplateRenderer
	theme         *theme.RendererConfig
	redirectDelay time.Duration
	title         string
	action        string
}

// New constructs a Renderer backed by the embedded templates unless
// WithTemplateRenderer is supplied.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		redirectDelay: controller.DefaultRedirectDelay,
		title:         defaultTitle,
		action:        defaultAction,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
		if err != nil {
			return nil, fmt.Errorf("web: configure template renderer: %w", err)
		}
		r.templates = engine
	}
	if r.theme == nil {
		r.theme = NewThemeConfig(DefaultManifest(), "")
	}
	return r, nil
}

// View is the data handed to the page template.
type View struct {
	Title          string      `json:"title"`
	Heading        string      `json:"heading"`
	Action         string      `json:"action"`
	Fields         []FieldView `json:"fields"`
	Display        string      `json:"display"`
	SubmitLabel    string      `json:"submit_label"`
	LoadingText    string      `json:"loading_text"`
	SuccessMessage string      `json:"success_message"`
	BackendMessage string      `json:"backend_message"`
	Busy           bool        `json:"busy"`
	Redirect       *Redirect   `json:"redirect,omitempty"`
	Theme          themeView   `json:"theme"`
}

// FieldView is one rendered input.
type FieldView struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	Error       string `json:"error"`
}

// Redirect describes the meta refresh emitted after a successful reset.
type Redirect struct {
	URL     string `json:"url"`
	Seconds string `json:"seconds"`
}

// BuildView projects snap into template data. target is only used once the
// snapshot reports success.
func (r *Renderer) BuildView(snap controller.Snapshot, target string) View {
	view := View{
		Title:          r.title,
		Heading:        model.SubmitLabel,
		Action:         r.action,
		Display:        string(model.DisplayFor(snap.Status, snap.SuccessMessage)),
		SubmitLabel:    model.SubmitLabel,
		LoadingText:    defaultLoadingText,
		SuccessMessage: snap.SuccessMessage,
		BackendMessage: sanitizeMessage(snap.BackendMessage),
		Busy:           snap.Status == model.StatusLoading,
		Theme:          buildThemeView(r.theme),
	}

	for _, field := range model.Fields() {
		fv := FieldView{
			Name:        string(field.Name),
			Label:       field.Label,
			Placeholder: field.Placeholder,
			Type:        field.InputType(),
			Error:       snap.Errors.For(field.Name),
		}
		if !field.Secret {
			fv.Value, _ = snap.Form.Get(field.Name)
		}
		view.Fields = append(view.Fields, fv)
	}

	if snap.Status == model.StatusSuccess && strings.TrimSpace(target) != "" {
		view.Redirect = &Redirect{
			URL:     target,
			Seconds: refreshSeconds(r.redirectDelay),
		}
	}
	return view
}

// refreshSeconds rounds d up to whole seconds.
func refreshSeconds(d time.Duration) string {
	if d <= 0 {
		return "0"
	}
	secs := int64((d + time.Second - 1) / time.Second)
	return strconv.FormatInt(secs, 10)
}

// Render writes the page for snap to out and returns the markup.
func (r *Renderer) Render(snap controller.Snapshot, target string, out ...io.Writer) (string, error) {
	if r == nil || r.templates == nil {
		return "", errors.New("web: renderer is not configured")
	}
	html, err := r.templates.RenderTemplate(formTemplate, r.BuildView(snap, target), out...)
	if err != nil {
		return "", fmt.Errorf("web: render form: %w", err)
	}
	return html, nil
}
