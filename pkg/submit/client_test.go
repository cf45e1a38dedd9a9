package submit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resetform/pkg/model"
)

var sampleRequest = model.SubmitRequest{
	Username:        "ana",
	CurrentPassword: "old-secret",
	NewPassword:     "abc123!",
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "ftp://example.com", "://bad"} {
		if _, err := New(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestClient_URLTrimsTrailingSlash(t *testing.T) {
	c, err := New("https://api.example.com/")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := c.URL(); got != "https://api.example.com/submit" {
		t.Fatalf("unexpected url %s", got)
	}

	c, err = New("https://api.example.com/v1", WithPath("reset"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := c.URL(); got != "https://api.example.com/v1/reset" {
		t.Fatalf("unexpected url %s", got)
	}
}

func TestClient_SubmitSuccess(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/submit" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"ignored":true}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	res, err := c.Submit(context.Background(), sampleRequest)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Status != http.StatusOK {
		t.Fatalf("unexpected status %d", res.Status)
	}

	want := map[string]any{
		"username":        "ana",
		"currentPassword": "old-secret",
		"newPassword":     "abc123!",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_SubmitRejected(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "message body", status: http.StatusBadRequest, body: `{"message":"Invalid password"}`, message: "Invalid password"},
		{name: "empty message", status: http.StatusBadRequest, body: `{"message":""}`, message: MsgRejectedFallback},
		{name: "message kept verbatim", status: http.StatusBadRequest, body: `{"message":"  Account locked "}`, message: "  Account locked "},
		{name: "non-string message", status: http.StatusBadRequest, body: `{"message":42}`, message: MsgRejectedFallback},
		{name: "no body", status: http.StatusInternalServerError, message: MsgRejectedFallback},
		{name: "plain text body", status: http.StatusBadGateway, body: "bad gateway", message: MsgRejectedFallback},
		{name: "non-200 success class", status: http.StatusCreated, body: `{}`, message: MsgRejectedFallback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c, err := New(srv.URL, WithHTTPClient(srv.Client()))
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			_, err = c.Submit(context.Background(), sampleRequest)
			var submitErr *Error
			if !errors.As(err, &submitErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if submitErr.Kind != KindRejected || submitErr.Status != tc.status {
				t.Fatalf("unexpected error %+v", submitErr)
			}
			if got := ErrorMessage(err); got != tc.message {
				t.Fatalf("message: got %q, want %q", got, tc.message)
			}
		})
	}
}

func TestClient_SubmitNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := New(url)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = c.Submit(context.Background(), sampleRequest)
	if KindOf(err) != KindNoResponse {
		t.Fatalf("expected no response, got %v", err)
	}
	if got := ErrorMessage(err); got != MsgNoResponse {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestClient_SubmitUnexpected(t *testing.T) {
	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	//nolint:staticcheck // a nil context makes request construction fail
	_, err = c.Submit(nil, sampleRequest)
	if KindOf(err) != KindUnexpected {
		t.Fatalf("expected unexpected failure, got %v", err)
	}
	if got := ErrorMessage(err); got != MsgUnexpected {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestErrorMessage_ForeignErrors(t *testing.T) {
	if got := ErrorMessage(nil); got != "" {
		t.Fatalf("nil error should have no message, got %q", got)
	}
	if got := ErrorMessage(errors.New("boom")); got != MsgUnexpected {
		t.Fatalf("unexpected message %q", got)
	}
	wrapped := errors.Join(errors.New("outer"), rejected(http.StatusBadRequest, "Invalid password"))
	if got := ErrorMessage(wrapped); got != "Invalid password" {
		t.Fatalf("wrapped message %q", got)
	}
}
