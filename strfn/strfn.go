package strfn

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	caseBoundary  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separatorRuns = regexp.MustCompile(`[\s_\-]+`)
	nonAlnum      = regexp.MustCompile(`[^a-z0-9]`)
)

// Capitalize upper-cases the first rune and lower-cases the rest.
// The empty string stays empty.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Truncate shortens s to at most length runes, ending in suffix.
// Strings that already fit are returned unchanged.
func Truncate(s string, length int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	keep := length - len([]rune(suffix))
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + suffix
}

// KebabCase converts "fooBar baz_qux" style input to "foo-bar-baz-qux":
// a hyphen is inserted at every lower-to-upper boundary, separator runs
// collapse to a single hyphen, and the result is lower-cased.
func KebabCase(s string) string {
	return caseConvert(s, "-")
}

// SnakeCase is KebabCase with underscores.
func SnakeCase(s string) string {
	return caseConvert(s, "_")
}

func caseConvert(s, sep string) string {
	s = caseBoundary.ReplaceAllString(s, "${1}"+sep+"${2}")
	s = separatorRuns.ReplaceAllString(s, sep)
	return strings.ToLower(strings.Trim(s, sep))
}

// CamelCase converts separated or kebab/snake input to lowerCamelCase.
func CamelCase(s string) string {
	words := separatorRuns.Split(caseBoundary.ReplaceAllString(s, "${1} ${2}"), -1)
	var b strings.Builder
	first := true
	for _, w := range words {
		if w == "" {
			continue
		}
		if first {
			b.WriteString(strings.ToLower(w))
			first = false
			continue
		}
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// IsPalindrome reports whether s reads the same forwards and backwards,
// ignoring case and any non-alphanumeric rune. A string with nothing left
// after stripping is not a palindrome.
func IsPalindrome(s string) bool {
	cleaned := nonAlnum.ReplaceAllString(strings.ToLower(s), "")
	if cleaned == "" {
		return false
	}
	return cleaned == Reverse(cleaned)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
