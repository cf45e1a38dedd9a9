package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resetform/pkg/model"
)

func TestIsStrongPassword(t *testing.T) {
	cases := []struct {
		candidate string
		want      bool
	}{
		{"abc123!", true},
		{"ABCDEF1!", true},
		{"a1!a1!", true},
		{"Zz9^&*", true},
		{"abcdef", false},
		{"a1!", false},
		{"abc123", false},
		{"abc!!!", false},
		{"123!!!", false},
		{"abc 123!", false},
		{"abc123!?", false},
		{"ábc123!", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsStrongPassword(tc.candidate); got != tc.want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", tc.candidate, got, tc.want)
		}
	}
}

func TestValidate_AllValid(t *testing.T) {
	ok, errs := Validate(model.FormState{
		Username:        "ana",
		CurrentPassword: "old-secret",
		NewPassword:     "abc123!",
		ConfirmPassword: "abc123!",
	})
	if !ok {
		t.Fatalf("expected valid, got %+v", errs)
	}
	if diff := cmp.Diff(model.ValidationErrors{}, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	ok, errs := Validate(model.FormState{})
	if ok {
		t.Fatalf("expected invalid")
	}
	want := model.ValidationErrors{
		Username:        MsgUsernameRequired,
		CurrentPassword: MsgCurrentPasswordRequired,
		NewPassword:     MsgNewPasswordRequired,
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_EachRequiredFieldIndependently(t *testing.T) {
	valid := model.FormState{
		Username:        "ana",
		CurrentPassword: "old",
		NewPassword:     "abc123!",
		ConfirmPassword: "abc123!",
	}

	cases := []struct {
		name  string
		field model.FieldName
		want  string
	}{
		{name: "username", field: model.FieldUsername, want: MsgUsernameRequired},
		{name: "current password", field: model.FieldCurrentPassword, want: MsgCurrentPasswordRequired},
		{name: "new password", field: model.FieldNewPassword, want: MsgNewPasswordRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := valid
			if err := state.Set(tc.field, ""); err != nil {
				t.Fatalf("set: %v", err)
			}
			ok, errs := Validate(state)
			if ok {
				t.Fatalf("expected invalid")
			}
			if got := errs.For(tc.field); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidate_MismatchIsIndependentOfNewPassword(t *testing.T) {
	cases := []struct {
		name        string
		newPassword string
		confirm     string
		wantNew     string
	}{
		{name: "strong", newPassword: "abc123!", confirm: "abc123?", wantNew: ""},
		{name: "weak", newPassword: "abcdef", confirm: "abcdeg", wantNew: MsgPasswordWeak},
		{name: "empty", newPassword: "", confirm: "abc123!", wantNew: MsgNewPasswordRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, errs := Validate(model.FormState{
				Username:        "ana",
				CurrentPassword: "old",
				NewPassword:     tc.newPassword,
				ConfirmPassword: tc.confirm,
			})
			if ok {
				t.Fatalf("expected invalid")
			}
			if errs.ConfirmPassword != MsgPasswordMismatch {
				t.Fatalf("confirm: got %q", errs.ConfirmPassword)
			}
			if errs.NewPassword != tc.wantNew {
				t.Fatalf("new password: got %q, want %q", errs.NewPassword, tc.wantNew)
			}
		})
	}
}

func TestValidate_WeakButMatching(t *testing.T) {
	ok, errs := Validate(model.FormState{
		Username:        "ana",
		CurrentPassword: "old",
		NewPassword:     "abcdef",
		ConfirmPassword: "abcdef",
	})
	if ok {
		t.Fatalf("expected invalid")
	}
	if errs.NewPassword != MsgPasswordWeak || errs.ConfirmPassword != "" {
		t.Fatalf("unexpected errors %+v", errs)
	}
}

func TestValidate_WhitespaceIsNotEmpty(t *testing.T) {
	_, errs := Validate(model.FormState{Username: " ", CurrentPassword: " "})
	if errs.Username != "" || errs.CurrentPassword != "" {
		t.Fatalf("whitespace should satisfy required checks, got %+v", errs)
	}
}
