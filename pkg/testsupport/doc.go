// Package testsupport holds helpers shared by package tests: value diffs,
// template output capture, and a contract stub server.
package testsupport
