package contract

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/goliatone/go-resetform/pkg/model"
)

// Messages returned by the stub endpoint.
const (
	MsgInvalidPassword = "Invalid password"
	MsgInvalidRequest  = "Invalid request"
)

// StubOption configures the stub endpoint handler.
type StubOption func(*stubHandler)

// WithRejectedPasswords makes the stub reject requests whose current password
// is one of passwords.
func WithRejectedPasswords(passwords ...string) StubOption {
	return func(h *stubHandler) {
		for _, pw := range passwords {
			if pw != "" {
				h.rejected[pw] = struct{}{}
			}
		}
	}
}

// WithStubLogger sets the logger used for request tracing.
func WithStubLogger(logger *log.Logger) StubOption {
	return func(h *stubHandler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithAcceptHook registers fn to observe every accepted request.
func WithAcceptHook(fn func(model.SubmitRequest)) StubOption {
	return func(h *stubHandler) {
		h.onAccept = fn
	}
}

type stubHandler struct {
	contract *Contract
	rejected map[string]struct{}
	logger   *log.Logger
	onAccept func(model.SubmitRequest)
}

// NewStubHandler returns a submission endpoint that enforces the contract.
// Contract violations and rejected passwords answer 400 with a message body;
// everything else answers 200.
func NewStubHandler(c *Contract, options ...StubOption) http.Handler {
	h := &stubHandler{
		contract: c,
		rejected: make(map[string]struct{}),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	return h
}

func (h *stubHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.contract.ValidateRequest(r.Context(), r); err != nil {
		h.logger.Printf("stub: %v", err)
		status := http.StatusBadRequest
		if r.Method != http.MethodPost {
			status = http.StatusMethodNotAllowed
		}
		writeMessage(w, status, MsgInvalidRequest+": "+err.Error())
		return
	}

	var req model.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	if _, rejected := h.rejected[req.CurrentPassword]; rejected {
		h.logger.Printf("stub: rejected reset for %q", req.Username)
		writeMessage(w, http.StatusBadRequest, MsgInvalidPassword)
		return
	}

	h.logger.Printf("stub: accepted reset for %q", req.Username)
	if h.onAccept != nil {
		h.onAccept(req)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("{}"))
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
