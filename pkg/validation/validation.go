// Package validation implements the local checks run before a password reset
// is submitted.
package validation

import "github.com/goliatone/go-resetform/pkg/model"

// Messages surfaced next to the offending field.
const (
	MsgUsernameRequired        = "Username is required."
	MsgCurrentPasswordRequired = "Current password is required."
	MsgNewPasswordRequired     = "New password is required."
	MsgPasswordWeak            = "Password must be at least 6 characters long, contain at least one letter, one number, and one special character."
	MsgPasswordMismatch        = "Passwords do not match."
)

// Validate evaluates every rule independently and returns the full error set.
// The result is valid iff no field carries a message.
//
// The confirmation check does not depend on the new password branch, so an
// empty or weak new password can report both its own error and a mismatch.
func Validate(state model.FormState) (bool, model.ValidationErrors) {
	var errs model.ValidationErrors

	if state.Username == "" {
		errs.Username = MsgUsernameRequired
	}

	if state.CurrentPassword == "" {
		errs.CurrentPassword = MsgCurrentPasswordRequired
	}

	switch {
	case state.NewPassword == "":
		errs.NewPassword = MsgNewPasswordRequired
	case !IsStrongPassword(state.NewPassword):
		errs.NewPassword = MsgPasswordWeak
	}

	if state.NewPassword != state.ConfirmPassword {
		errs.ConfirmPassword = MsgPasswordMismatch
	}

	return errs.Valid(), errs
}
