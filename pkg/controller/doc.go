// Package controller owns the password reset form state machine.
//
// A Controller holds the form values, the last validation result, the
// submission status and the messages shown to the user. Submit validates the
// form, posts it through a Submitter and, once the endpoint accepted it,
// waits the success delay, publishes the success message, waits the redirect
// delay and hands the redirect target to a Navigator.
//
// At most one submission is in flight at a time. The guard is an atomic flag
// owned by the controller, so concurrent callers are rejected with
// ErrInFlight regardless of how the front end renders the submit control.
package controller
