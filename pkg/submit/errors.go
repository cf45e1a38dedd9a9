package submit

import (
	"errors"
	"fmt"
)

// Kind classifies a failed submission.
type Kind int

const (
	// KindUnexpected covers client-side failures such as request construction.
	KindUnexpected Kind = iota
	// KindRejected means the endpoint answered with a non-200 status.
	KindRejected
	// KindNoResponse means the request never reached a responder.
	KindNoResponse
)

func (k Kind) String() string {
	switch k {
	case KindRejected:
		return "rejected"
	case KindNoResponse:
		return "no_response"
	default:
		return "unexpected"
	}
}

// User-facing messages for failures that carry no endpoint message.
const (
	MsgRejectedFallback = "Something went wrong. Please try again."
	MsgNoResponse       = "Server unavailable. Please check your internet connection and try again."
	MsgUnexpected       = "An unexpected error occurred. Please try again."
)

// Error describes a failed submission. Message is always populated with the
// text that should be shown to the user.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRejected:
		return fmt.Sprintf("submit: rejected with status %d: %s", e.Status, e.Message)
	case KindNoResponse:
		if e.Err != nil {
			return fmt.Sprintf("submit: no response: %v", e.Err)
		}
		return "submit: no response"
	default:
		if e.Err != nil {
			return fmt.Sprintf("submit: %v", e.Err)
		}
		return "submit: unexpected failure"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorMessage returns the message to surface for err. Endpoint messages win,
// followed by the connectivity message, followed by the generic one.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var submitErr *Error
	if errors.As(err, &submitErr) && submitErr.Message != "" {
		return submitErr.Message
	}
	return MsgUnexpected
}

// KindOf returns the failure kind of err, defaulting to KindUnexpected.
func KindOf(err error) Kind {
	var submitErr *Error
	if errors.As(err, &submitErr) {
		return submitErr.Kind
	}
	return KindUnexpected
}

func rejected(status int, message string) *Error {
	if message == "" {
		message = MsgRejectedFallback
	}
	return &Error{Kind: KindRejected, Status: status, Message: message}
}

func noResponse(err error) *Error {
	return &Error{Kind: KindNoResponse, Message: MsgNoResponse, Err: err}
}

func unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: MsgUnexpected, Err: err}
}
