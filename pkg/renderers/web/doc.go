// Package web serves the password reset form as a server-rendered HTML page.
//
// Renderer turns a controller.Snapshot into markup through the pongo2 engine
// in pkg/render/template/gotemplate. Handler drives one controller per POST
// and leaves navigation to the browser through a meta refresh.
package web
