// Package tag answers whether an explicit value already exists for a field
// name (an application assigned default or a submitted request value) and
// renders small markup fragments from prepared element parameters.
//
// A process-wide Registry backs the package level functions; request scoped
// code can create its own with NewRegistry and inject it into elements.
package tag
