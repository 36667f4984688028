// Package template defines the renderer-agnostic template contract used to
// turn prepared element attributes into markup. The gotemplate subpackage
// provides the pongo2 backed implementation.
package template
