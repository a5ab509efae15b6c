// Package sanitizer strips dangerous HTML from rendered message bodies.
//
// The template renderer does not escape its input: campaign templates are
// operator-authored and trusted, and escaping them would break letters that
// legitimately contain angle brackets. Deployments where recipient-sourced
// or otherwise untrusted text can reach a template should pass the rendered
// body through EmailBody before handing it to the mail session.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// Exactly the vocabulary the markup renderer emits, plus anchors
		// for templates that embed their own links.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowElements(
			"html", "body",
			"br",
			"strong", "u",
			"ul", "li",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.RequireNoFollowOnLinks(true)
	})
}

// EmailBody removes everything outside the rendered-markup vocabulary:
// scripts, event handlers, javascript: URLs, and any element the campaign
// renderer would never produce.
func EmailBody(s string) string {
	initPolicy()
	return emailPolicy.Sanitize(s)
}

// EmailBodyCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func EmailBodyCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
