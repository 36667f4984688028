// Package forms provides the base form element: a named field carrying a
// label, a default value, HTML attributes, validators, filters and options.
//
// An element resolves its effective value on demand. When it belongs to a
// form, the form's value for the element name is used unless the tag helper
// (see package tag) already holds an explicit value for that name; otherwise,
// or when the form has nothing, the element's default value applies:
//
//	age := forms.MustNew("age", attr.Attributes{"class": attr.String("big")})
//	age.SetDefault(attr.Int(18)).SetLabel("Age")
//	age.SetForm(forms.MapForm{"age": attr.Int(30)})
//
//	params := age.PrepareAttributes(attr.Attributes{"id": attr.String("x")})
//	// params.Args[0] == "age", params.Attrs: id=x class=big value=30
//
// Concrete widgets supply a Renderer; Render and String delegate to it.
package forms
