package ocr

import "strings"

// engineCodes maps public short language codes to tesseract's own codes.
// Note Thai: the public code is "th" but the engine uses "tha".
var engineCodes = map[string]string{
	"en":    "eng",
	"ru":    "rus",
	"ko":    "kor",
	"ja":    "jpn",
	"zh-CN": "chi_sim",
	"th":    "tha",
}

// supportedEngineCodes lists every language the tool ships data for, in the
// order they are tried during auto detection.
var supportedEngineCodes = []string{"eng", "rus", "kor", "jpn", "chi_sim", "tha"}

// EngineCode maps a public short code to the engine code, or "" when unknown.
func EngineCode(public string) string {
	return engineCodes[public]
}

// ResolveHint expands an OCR language hint into the string handed to the
// engine. "auto" becomes every supported language except the translation
// target, joined with "+": the target language is what the user wants the
// text in, not what is on screen.
func ResolveHint(hint, targetLang string) string {
	if hint != "auto" {
		return hint
	}
	targetCode := EngineCode(targetLang)
	langs := make([]string, 0, len(supportedEngineCodes))
	for _, code := range supportedEngineCodes {
		if code != targetCode {
			langs = append(langs, code)
		}
	}
	return strings.Join(langs, "+")
}
