package views

import (
	"net/url"
	"strings"
)

const twitterBase = "https://twitter.com/"

// TwitterURL returns the profile link for a handle. A leading "@" is dropped.
func TwitterURL(handle string) string {
	return twitterBase + url.PathEscape(strings.TrimPrefix(handle, "@"))
}

// declaration is one CSS property in an inline style.
type declaration struct {
	prop, value string
}

// inlineStyle joins declarations in order, so output is stable across renders.
func inlineStyle(decls ...declaration) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.prop)
		b.WriteByte(':')
		b.WriteString(d.value)
	}
	return b.String()
}
