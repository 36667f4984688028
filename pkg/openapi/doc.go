// Package openapi derives form elements from OpenAPI 3 request bodies using
// kin-openapi. Each top-level property of an operation's request schema
// becomes one element.
package openapi
