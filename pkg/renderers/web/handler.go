package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/goliatone/go-resetform/pkg/controller"
	"github.com/goliatone/go-resetform/pkg/model"
	"github.com/goliatone/go-resetform/pkg/submit"
)

// ControllerFactory builds a fresh controller for one submission. The handler
// appends its own options, which take precedence.
type ControllerFactory func(options ...controller.Option) (*controller.Controller, error)

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger sets the logger used for request tracing.
func WithHandlerLogger(logger *log.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Handler serves the form page and its assets.
type Handler struct {
	renderer *Renderer
	factory  ControllerFactory
	logger   *log.Logger
	mux      *http.ServeMux
}

// NewHandler wires renderer and factory into an http.Handler.
func NewHandler(renderer *Renderer, factory ControllerFactory, options ...HandlerOption) (*Handler, error) {
	if renderer == nil {
		return nil, errors.New("web: renderer is required")
	}
	if factory == nil {
		return nil, errors.New("web: controller factory is required")
	}
	h := &Handler{
		renderer: renderer,
		factory:  factory,
		logger:   log.New(io.Discard, "", 0),
		mux:      http.NewServeMux(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}

	h.mux.Handle(AssetPrefix+"/", http.StripPrefix(AssetPrefix, http.FileServer(http.FS(AssetsFS()))))
	h.mux.HandleFunc("/", h.serveForm)
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) serveForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.write(w, http.StatusOK, controller.Snapshot{Display: model.DisplayLabel}, "")
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	nav := &controller.RecordingNavigator{}
	ctrl, err := h.factory(
		controller.WithRedirectDelay(0),
		controller.WithNavigator(nav),
	)
	if err != nil {
		h.logger.Printf("web: build controller: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	for _, name := range model.FieldNames {
		if err := ctrl.UpdateField(name, r.PostForm.Get(string(name))); err != nil {
			h.logger.Printf("web: update %s: %v", name, err)
		}
	}

	err = ctrl.Submit(r.Context())
	snap := ctrl.Snapshot()
	code := statusCode(err)
	if err != nil && code >= http.StatusInternalServerError {
		h.logger.Printf("web: submit: %v", err)
	}
	h.write(w, code, snap, ctrl.RedirectTarget())
}

func (h *Handler) write(w http.ResponseWriter, code int, snap controller.Snapshot, target string) {
	var buf bytes.Buffer
	if _, err := h.renderer.Render(snap, target, &buf); err != nil {
		h.logger.Printf("web: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// statusCode maps a Submit outcome to the page response status.
func statusCode(err error) int {
	var submitErr *submit.Error
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, controller.ErrInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, controller.ErrInFlight):
		return http.StatusConflict
	case errors.As(err, &submitErr):
		if submitErr.Kind == submit.KindUnexpected {
			return http.StatusInternalServerError
		}
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Success already reached; the client went away during the pause.
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
