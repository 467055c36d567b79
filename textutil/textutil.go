// Package textutil classifies and cleans OCR output before translation.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// singleWordMaxLen bounds how long a no-whitespace string can be and still
// count as a dictionary-searchable token.
const singleWordMaxLen = 50

var edgeNoise = regexp.MustCompile(`^[^a-zA-Z0-9\p{L}]+|[^a-zA-Z0-9\p{L}]+$`)

// IsSingleWord reports whether text should be treated as one token rather
// than a phrase or sentence. This classification drives every downstream
// decision, dictionary gating included.
func IsSingleWord(text string) bool {
	trimmed := strings.TrimSpace(text)
	return !strings.ContainsFunc(trimmed, unicode.IsSpace) && len(trimmed) < singleWordMaxLen
}

// TrimEdgeNoise strips leading and trailing runes that are neither ASCII
// alphanumerics nor letters: quote marks, bullets, and other selection
// debris around a word.
func TrimEdgeNoise(text string) string {
	return edgeNoise.ReplaceAllString(text, "")
}

// Normalize trims OCR output and, for single tokens, removes edge noise.
// Phrases are left alone; the noise pattern would eat interior punctuation
// meaning.
func Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	if IsSingleWord(trimmed) {
		return TrimEdgeNoise(trimmed)
	}
	return trimmed
}
