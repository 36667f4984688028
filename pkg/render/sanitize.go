package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	formPolicyOnce sync.Once
	formPolicy     *bluemonday.Policy
)

// FormPolicy returns a shared bluemonday policy that keeps form controls
// (input, select, textarea, label, button and their wrappers) and the
// attributes they commonly carry, stripping scripts and event handlers.
func FormPolicy() *bluemonday.Policy {
	formPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"input", "select", "option", "optgroup", "textarea", "label",
			"button", "fieldset", "legend", "div", "span", "p", "datalist",
		)

		policy.AllowAttrs("id", "class", "title", "role").Globally()
		policy.AllowAttrs("aria-label", "aria-describedby", "aria-invalid", "aria-required").Globally()
		policy.AllowDataAttributes()

		policy.AllowAttrs(
			"type", "name", "value", "placeholder", "required", "disabled",
			"readonly", "min", "max", "step", "pattern", "minlength",
			"maxlength", "size", "checked", "multiple", "autocomplete",
			"autofocus", "list", "form",
		).OnElements("input")
		policy.AllowAttrs(
			"name", "required", "disabled", "multiple", "size", "autocomplete", "form",
		).OnElements("select")
		policy.AllowAttrs("value", "selected", "disabled", "label").OnElements("option")
		policy.AllowAttrs("label", "disabled").OnElements("optgroup")
		policy.AllowAttrs(
			"name", "placeholder", "required", "disabled", "readonly",
			"rows", "cols", "minlength", "maxlength", "wrap", "form",
		).OnElements("textarea")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs("type", "name", "value", "disabled", "form").OnElements("button")
		policy.AllowAttrs("name", "disabled").OnElements("fieldset")

		formPolicy = policy
	})
	return formPolicy
}

// SanitizeText strips every tag from raw, leaving escaped text.
func SanitizeText(raw string) string {
	return bluemonday.StrictPolicy().Sanitize(raw)
}
