// SPDX-License-Identifier: Apache-2.0

package helper

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const keySeparator = "-"

// ToInternalName converts a hyphen-case manifest key to the camel-case
// attribute name used by the schema, e.g. "require-dev" -> "requireDev".
func ToInternalName(key string) string {
	return lowerFirst(titleSegments(key))
}

// ToExternalName converts a camel-case attribute name back to its
// hyphen-case manifest key, e.g. "nonFeatureBranches" -> "non-feature-branches".
//
// A run of capitals is kept together as one segment unless its last capital
// starts a new word: "HTTPServer" -> "http-server".
func ToExternalName(name string) string {
	runes := []rune(name)

	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}

		b.WriteString(keySeparator)
		b.WriteRune(r)
		for i+1 < len(runes) && unicode.IsUpper(runes[i+1]) && !startsWord(runes, i+1) {
			i++
			b.WriteRune(runes[i])
		}
	}

	return strings.TrimLeft(strings.ToLower(b.String()), keySeparator)
}

// ToMethodName title-cases every hyphen-delimited segment and joins them,
// e.g. "psr-4" -> "Psr4". The result is used as a dispatch token.
func ToMethodName(key string) string {
	return titleSegments(key)
}

func titleSegments(key string) string {
	// a Caser is stateful, so one per call
	caser := cases.Title(language.Und, cases.NoLower)

	segments := strings.Split(key, keySeparator)
	for i := range segments {
		segments[i] = caser.String(segments[i])
	}

	return strings.Join(segments, "")
}

// startsWord reports whether the capital at i is followed by a lower-case letter.
func startsWord(runes []rune, i int) bool {
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
