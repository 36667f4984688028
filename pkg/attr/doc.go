// Package attr defines the value union shared by form elements and tag
// helpers: scalar and nested mapping values, attribute and option maps, and
// the positional/named parameter set consumed when rendering markup.
package attr
