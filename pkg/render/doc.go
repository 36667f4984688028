// Package render turns form elements into markup through templates.
//
// A TemplateRenderer pairs a template engine (see render/template) with one
// template and satisfies forms.Renderer, so it can be attached to elements
// with forms.WithRenderer. A Registry maps widget names to renderers.
package render
