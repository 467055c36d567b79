package textutil

import (
	"strings"
	"testing"
)

func TestIsSingleWord(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"plain word", "hello", true},
		{"padded word", "  hello\n", true},
		{"phrase", "hello there", false},
		{"interior tab", "a\tb", false},
		{"49 chars is a word", strings.Repeat("a", 49), true},
		{"50 chars is a phrase", strings.Repeat("a", 50), false},
		{"thai word", "สวัสดี", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSingleWord(tc.in); got != tc.want {
				t.Errorf("IsSingleWord(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTrimEdgeNoise(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"hello"`, "hello"},
		{"•hello!", "hello"},
		{"hello", "hello"},
		{"don't", "don't"}, // interior punctuation survives
		{"(สวัสดี)", "สวัสดี"},
		{"***", ""},
	}
	for _, tc := range cases {
		if got := TrimEdgeNoise(tc.in); got != tc.want {
			t.Errorf("TrimEdgeNoise(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	// Single tokens lose edge noise, phrases only lose outer whitespace.
	if got := Normalize("  'hello', "); got != "hello" {
		t.Errorf("Normalize single word = %q, want %q", got, "hello")
	}
	if got := Normalize("  she said hello. "); got != "she said hello." {
		t.Errorf("Normalize phrase = %q, want %q", got, "she said hello.")
	}
}
