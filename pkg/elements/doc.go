// Package elements loads declarative element definitions from JSON or YAML:
//
//	elements:
//	  - name: age
//	    widget: text
//	    label: Age
//	    default: 18
//	    attributes: {class: big}
//	    options: {help: In years}
//	    filters: [int]
//
// Untyped input is checked the way the element API checks it: a non-string
// name or a non-mapping options block fails with forms.ValidationError.
// Labels are stripped of markup since elements emit them unescaped.
package elements
