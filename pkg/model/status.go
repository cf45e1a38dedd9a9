package model

// Status is the lifecycle of a single submission attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	// SubmitLabel is shown on the submit control when nothing else is.
	SubmitLabel = "Reset Password"
	// SuccessMessage replaces the submit label once the reset succeeded.
	SuccessMessage = "Password reset successful. Redirecting..."
)

// Display names what occupies the submit control. Exactly one is shown.
type Display string

const (
	DisplayLabel   Display = "label"
	DisplayLoading Display = "loading"
	DisplaySuccess Display = "success"
)

// DisplayFor derives the submit control content from the status and the
// success message alone.
func DisplayFor(status Status, successMessage string) Display {
	if status == StatusLoading {
		return DisplayLoading
	}
	if successMessage != "" {
		return DisplaySuccess
	}
	return DisplayLabel
}
