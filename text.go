package desikit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isSpace reports whether r is whitespace for trimming purposes: Unicode
// space separators (Zs), the ASCII controls tab, LF, VT, FF and CR, the line
// and paragraph separators, and the byte order mark. U+0085 is not.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimSpace removes leading and trailing whitespace from s.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// IsBlank reports whether s is empty after TrimSpace.
func IsBlank(s string) bool {
	return TrimSpace(s) == ""
}

// Upper maps s to upper case with full Unicode case mapping, so "ß" becomes
// "SS". The language-neutral caser is used.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower maps s to lower case with full Unicode case mapping.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// PadEnd right-pads s with spaces until it is width runes long. Strings that
// are already long enough are returned unchanged.
func PadEnd(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
