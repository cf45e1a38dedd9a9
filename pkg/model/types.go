package model

import (
	"errors"
	"fmt"
)

// FieldName identifies one of the four form inputs. Values match the JSON keys
// used on the wire and the input names used by the HTML front end.
type FieldName string

const (
	FieldUsername        FieldName = "username"
	FieldCurrentPassword FieldName = "currentPassword"
	FieldNewPassword     FieldName = "newPassword"
	FieldConfirmPassword FieldName = "confirmPassword"
)

// FieldNames lists the inputs in display order.
var FieldNames = []FieldName{
	FieldUsername,
	FieldCurrentPassword,
	FieldNewPassword,
	FieldConfirmPassword,
}

// ErrUnknownField is returned when a field name is not part of the form.
var ErrUnknownField = errors.New("model: unknown field")

// ParseFieldName validates a raw field name.
func ParseFieldName(raw string) (FieldName, error) {
	name := FieldName(raw)
	for _, known := range FieldNames {
		if known == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownField, raw)
}

// FormState holds the raw values typed by the user.
type FormState struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Get returns the value of the named field.
func (s FormState) Get(name FieldName) (string, error) {
	switch name {
	case FieldUsername:
		return s.Username, nil
	case FieldCurrentPassword:
		return s.CurrentPassword, nil
	case FieldNewPassword:
		return s.NewPassword, nil
	case FieldConfirmPassword:
		return s.ConfirmPassword, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownField, name)
	}
}

// Set writes the value of the named field.
func (s *FormState) Set(name FieldName, value string) error {
	switch name {
	case FieldUsername:
		s.Username = value
	case FieldCurrentPassword:
		s.CurrentPassword = value
	case FieldNewPassword:
		s.NewPassword = value
	case FieldConfirmPassword:
		s.ConfirmPassword = value
	default:
		return fmt.Errorf("%w %q", ErrUnknownField, name)
	}
	return nil
}

// Request builds the wire payload. The confirmation never leaves the form.
func (s FormState) Request() SubmitRequest {
	return SubmitRequest{
		Username:        s.Username,
		CurrentPassword: s.CurrentPassword,
		NewPassword:     s.NewPassword,
	}
}

// SubmitRequest is the JSON body posted to the submission endpoint.
type SubmitRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ValidationErrors carries one message per field. Empty strings mean the field
// passed validation. Values are always replaced as a whole.
type ValidationErrors struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Valid reports whether every field is free of errors.
func (e ValidationErrors) Valid() bool {
	return e.Username == "" &&
		e.CurrentPassword == "" &&
		e.NewPassword == "" &&
		e.ConfirmPassword == ""
}

// For returns the message attached to name, or "" for unknown names.
func (e ValidationErrors) For(name FieldName) string {
	switch name {
	case FieldUsername:
		return e.Username
	case FieldCurrentPassword:
		return e.CurrentPassword
	case FieldNewPassword:
		return e.NewPassword
	case FieldConfirmPassword:
		return e.ConfirmPassword
	default:
		return ""
	}
}

// Map returns the non-empty messages keyed by field name.
func (e ValidationErrors) Map() map[FieldName]string {
	out := make(map[FieldName]string, len(FieldNames))
	for _, name := range FieldNames {
		if msg := e.For(name); msg != "" {
			out[name] = msg
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
