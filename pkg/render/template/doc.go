// Package template defines the template engine contract used by the HTML
// front end. Implementations live in subpackages (see gotemplate).
package template
