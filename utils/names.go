package utils

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Ellipsis is appended to truncated names
const Ellipsis = "…"

// NormalizeName trims the name, collapses inner whitespace and applies NFC
// so that "é" typed as e + combining accent counts as one character
func NormalizeName(name string) string {
	return norm.NFC.String(strings.Join(strings.Fields(name), " "))
}

// GraphemeCount returns the number of user-perceived characters in s
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// TruncateName shortens s to at most budget characters (grapheme clusters),
// ending with an ellipsis when anything was cut. Names at or under the budget
// are returned unmodified.
func TruncateName(s string, budget int) string {
	if budget <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(s) <= budget {
		return s
	}
	return TrimGraphemes(s, budget-1) + Ellipsis
}

// TrimGraphemes keeps the first n grapheme clusters of s and drops trailing
// spaces and hyphens left dangling by the cut
func TrimGraphemes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	g := uniseg.NewGraphemes(s)
	var b strings.Builder
	for i := 0; i < n && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return strings.TrimRight(b.String(), " -")
}

// Upper uppercases s with Unicode-aware rules (e.g. "ß" -> "SS")
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Initials returns up to max uppercase initials of the words in s
func Initials(s string, max int) string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(s) {
		if count >= max {
			break
		}
		g := uniseg.NewGraphemes(word)
		if !g.Next() {
			continue
		}
		b.WriteString(g.Str())
		count++
	}
	return Upper(b.String())
}
