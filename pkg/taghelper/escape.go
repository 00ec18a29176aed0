package taghelper

import "html"

// EscapeAttr escapes an attribute value. It escapes &, <, >, " and ' so the
// value is safe inside either quote style.
func EscapeAttr(value string) string {
	return html.EscapeString(value)
}

// EscapeText escapes element text content.
func EscapeText(value string) string {
	return html.EscapeString(value)
}
