// Package sanitizer cleans user-supplied markup before it is stored or
// rendered.
package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	richPolicy   *bluemonday.Policy
	helpPolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		richPolicy = bluemonday.NewPolicy()
		richPolicy.AllowStandardURLs()
		richPolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i", "u",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		richPolicy.AllowAttrs("href").OnElements("a")
		richPolicy.RequireNoFollowOnLinks(true)

		// Help text is author-controlled markdown output; links may open in
		// a new tab.
		helpPolicy = bluemonday.NewPolicy()
		helpPolicy.AllowStandardURLs()
		helpPolicy.AllowElements("p", "br", "strong", "em", "code", "ul", "ol", "li")
		helpPolicy.AllowAttrs("href", "title").OnElements("a")
		helpPolicy.RequireNoFollowOnLinks(true)
		helpPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
}

// StripHTML removes all markup and returns plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML keeps basic formatting (paragraphs, emphasis, lists, code,
// quotes, nofollow links) and drops everything else, including scripts,
// event handlers and javascript: URLs. Rich-text textareas import through it.
func SanitizeHTML(s string) string {
	initPolicies()
	return richPolicy.Sanitize(s)
}

// SanitizeHelpText cleans rendered help text.
func SanitizeHelpText(s string) string {
	initPolicies()
	return helpPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}

// Unescape decodes HTML entities in submitted text, so "&amp;" imports as "&".
func Unescape(s string) string {
	return html.UnescapeString(s)
}
