// Package submit posts password reset requests to the remote submission
// endpoint and classifies failures into the three user-facing outcomes the
// form distinguishes: the endpoint rejected the request (optionally with a
// message in the body), no response arrived at all, or the request could not
// be built in the first place.
package submit
