package ocr

import "testing"

func TestEngineCode(t *testing.T) {
	cases := map[string]string{
		"en":    "eng",
		"th":    "tha", // engine code differs from the public one
		"zh-CN": "chi_sim",
		"xx":    "",
	}
	for public, want := range cases {
		if got := EngineCode(public); got != want {
			t.Errorf("EngineCode(%q) = %q, want %q", public, got, want)
		}
	}
}

func TestResolveHintPassthrough(t *testing.T) {
	if got := ResolveHint("eng", "th"); got != "eng" {
		t.Errorf("ResolveHint(eng) = %q", got)
	}
	if got := ResolveHint("eng+rus", "th"); got != "eng+rus" {
		t.Errorf("ResolveHint(eng+rus) = %q", got)
	}
}

func TestResolveHintAuto(t *testing.T) {
	// auto excludes the target language: the user wants Thai out, so Thai
	// is not expected on screen.
	if got := ResolveHint("auto", "th"); got != "eng+rus+kor+jpn+chi_sim" {
		t.Errorf("ResolveHint(auto, th) = %q", got)
	}
	if got := ResolveHint("auto", "en"); got != "rus+kor+jpn+chi_sim+tha" {
		t.Errorf("ResolveHint(auto, en) = %q", got)
	}
	// Unknown target keeps every language in play.
	if got := ResolveHint("auto", "fr"); got != "eng+rus+kor+jpn+chi_sim+tha" {
		t.Errorf("ResolveHint(auto, fr) = %q", got)
	}
}
