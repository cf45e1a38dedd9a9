package web

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-resetform/pkg/controller"
	"github.com/goliatone/go-resetform/pkg/model"
	"github.com/goliatone/go-resetform/pkg/testsupport"
	"github.com/goliatone/go-resetform/pkg/validation"
)

func newRenderer(t *testing.T, options ...Option) *Renderer {
	t.Helper()
	r, err := New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderer_EmptyForm(t *testing.T) {
	r := newRenderer(t)

	out, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return r.Render(controller.Snapshot{}, "", w)
	})
	if out != written {
		t.Fatalf("returned and written output differ")
	}

	for _, field := range model.Fields() {
		if !strings.Contains(out, `name="`+string(field.Name)+`"`) {
			t.Fatalf("missing input %s in %s", field.Name, out)
		}
		if !strings.Contains(out, field.Label) {
			t.Fatalf("missing label %q", field.Label)
		}
	}
	if strings.Count(out, `type="password"`) != 3 {
		t.Fatalf("expected three masked inputs")
	}
	if !strings.Contains(out, model.SubmitLabel) {
		t.Fatalf("expected submit label")
	}
	if strings.Contains(out, "http-equiv=\"refresh\"") {
		t.Fatalf("unexpected refresh on idle form")
	}
	if !strings.Contains(out, `href="/assets/resetform.css"`) {
		t.Fatalf("expected stylesheet link, got %s", out)
	}
	if !strings.Contains(out, "--color-accent: #d6001c;") {
		t.Fatalf("expected theme css variables")
	}
}

func TestRenderer_BuildViewNeverEchoesSecrets(t *testing.T) {
	r := newRenderer(t)
	form := testsupport.ValidForm()
	form.NewPassword = "short"
	form.ConfirmPassword = "other"
	_, errs := validation.Validate(form)

	view := r.BuildView(controller.Snapshot{Form: form, Errors: errs}, "")

	want := []FieldView{
		{Name: "username", Label: "Username", Placeholder: "Enter your username", Type: "text", Value: form.Username},
		{Name: "currentPassword", Label: "Current Password", Placeholder: "Enter your current password", Type: "password"},
		{Name: "newPassword", Label: "New Password", Placeholder: "Enter your new password", Type: "password", Error: validation.MsgPasswordWeak},
		{Name: "confirmPassword", Label: "Confirm New Password", Placeholder: "Confirm your new password", Type: "password", Error: validation.MsgPasswordMismatch},
	}
	if diff := testsupport.CompareGolden(want, view.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if view.Display != string(model.DisplayLabel) || view.Redirect != nil {
		t.Fatalf("unexpected display state: %+v", view)
	}
}

func TestRenderer_DisplayStates(t *testing.T) {
	r := newRenderer(t)

	cases := []struct {
		name    string
		snap    controller.Snapshot
		want    string
		exclude []string
	}{
		{
			name:    "loading",
			snap:    controller.Snapshot{Status: model.StatusLoading},
			want:    defaultLoadingText,
			exclude: []string{model.SuccessMessage},
		},
		{
			name:    "success",
			snap:    controller.Snapshot{Status: model.StatusSuccess, SuccessMessage: model.SuccessMessage},
			want:    model.SuccessMessage,
			exclude: []string{defaultLoadingText},
		},
		{
			name:    "failed",
			snap:    controller.Snapshot{Status: model.StatusFailed, BackendMessage: "Invalid password"},
			want:    "Invalid password",
			exclude: []string{defaultLoadingText, model.SuccessMessage},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := r.Render(tc.snap, "https://example.com/next")
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !strings.Contains(out, tc.want) {
				t.Fatalf("expected %q in output", tc.want)
			}
			for _, text := range tc.exclude {
				if strings.Contains(out, text) {
					t.Fatalf("unexpected %q in output", text)
				}
			}
		})
	}
}

func TestRenderer_LoadingDisablesSubmit(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render(controller.Snapshot{Status: model.StatusLoading}, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, " disabled") {
		t.Fatalf("expected disabled submit while loading")
	}
}

func TestRenderer_SuccessRefresh(t *testing.T) {
	r := newRenderer(t, WithRedirectDelay(2*time.Second))
	snap := controller.Snapshot{Status: model.StatusSuccess, SuccessMessage: model.SuccessMessage}

	out, err := r.Render(snap, "https://example.com/books/")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `content="2;url=https://example.com/books/"`) {
		t.Fatalf("expected meta refresh, got %s", out)
	}
}

func TestRenderer_SanitizesBackendMessage(t *testing.T) {
	r := newRenderer(t)
	snap := controller.Snapshot{
		Status:         model.StatusFailed,
		BackendMessage: `<script>alert(1)</script><b>Account locked</b>`,
	}

	out, err := r.Render(snap, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script") || strings.Contains(out, "<b>") {
		t.Fatalf("expected markup stripped, got %s", out)
	}
	if !strings.Contains(out, "Account locked") {
		t.Fatalf("expected message text kept")
	}
}

func TestRefreshSeconds_RoundsUp(t *testing.T) {
	cases := []struct {
		delay time.Duration
		want  string
	}{
		{0, "0"},
		{500 * time.Millisecond, "1"},
		{time.Second, "1"},
		{1500 * time.Millisecond, "2"},
		{2 * time.Second, "2"},
	}
	for _, tc := range cases {
		if got := refreshSeconds(tc.delay); got != tc.want {
			t.Fatalf("refreshSeconds(%s) = %q, want %q", tc.delay, got, tc.want)
		}
	}
}

func TestRenderer_SubSecondRedirectDelay(t *testing.T) {
	r := newRenderer(t, WithRedirectDelay(400*time.Millisecond))
	snap := controller.Snapshot{Status: model.StatusSuccess, SuccessMessage: model.SuccessMessage}

	out, err := r.Render(snap, "https://example.com/books/")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `content="1;url=https://example.com/books/"`) {
		t.Fatalf("expected one second refresh, got %s", out)
	}
}
