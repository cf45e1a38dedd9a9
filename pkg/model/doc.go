// Package model defines the password reset form model shared by the
// controller and every front end. FormState holds the four raw input values,
// ValidationErrors mirrors the same keys with one message per field (an empty
// string meaning "no error"), and Status tracks a single submission attempt.
// Field descriptors returned by Fields describe the inputs in display order so
// renderers never hard-code labels or placeholders.
package model
