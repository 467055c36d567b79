package longdo

import (
	"regexp"
	"strings"
)

// PosUnknown is the sentinel part of speech for definitions with no
// recognizable tag.
const PosUnknown = "N/A"

var (
	parenPrefix = regexp.MustCompile(`^\s*\((.*?)\)\s*(.*)`)
	inlinePos   = regexp.MustCompile(`^(?i)(pron|adj|det|n|v|adv|int|conj)\.?\s*(.*)`)
)

// parseDefinition splits a definition cell into its part of speech and the
// translation body. The markup sometimes carries the part of speech in a
// leading parenthetical and sometimes inline at the start of the body; the
// inline tag is more specific and wins when both are present. With no
// leading parenthetical the whole cell is the translation, verbatim.
func parseDefinition(definition string) (pos, translation string) {
	m := parenPrefix.FindStringSubmatch(definition)
	if m == nil {
		return PosUnknown, definition
	}

	pos = strings.TrimSpace(m[1])
	rest := strings.TrimSpace(m[2])

	if im := inlinePos.FindStringSubmatch(rest); im != nil {
		return im[1], strings.TrimSpace(im[2])
	}
	return pos, rest
}
