// Package pipeline drives one capture→OCR→translate run on a background
// worker and hands the result to the presentation layer through a one-shot
// channel.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"floating-dictionary/capture"
	"floating-dictionary/textutil"
	"floating-dictionary/translator"
)

// Deps are the pipeline's collaborators. LoadImage defaults to
// capture.ReadAndRemove when nil.
type Deps struct {
	Capture    capture.Capturer
	LoadImage  func(path string) ([]byte, error)
	Extract    func(imageData []byte, lang string) (string, error)
	Translate  func(ctx context.Context, text, targetLang string) translator.CombinedTranslationData
	OCRLang    string
	TargetLang string
}

// CaptureText drives capture → load → OCR → normalize, synchronously. Any
// failure aborts the run here, before any network activity; a user
// cancellation surfaces as capture.ErrCancelled.
func CaptureText(ctx context.Context, deps Deps) (string, error) {
	path, err := deps.Capture.CaptureRegion(ctx)
	if err != nil {
		return "", err
	}
	log.Printf("pipeline: captured %s", path)

	load := deps.LoadImage
	if load == nil {
		load = capture.ReadAndRemove
	}
	imageData, err := load(path)
	if err != nil {
		return "", err
	}

	text, err := deps.Extract(imageData, deps.OCRLang)
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}
	return textutil.Normalize(text), nil
}

// StartTranslation runs the orchestrator off the presentation thread. The
// returned handoff delivers exactly one result; Translate itself never
// fails, so neither does this.
func StartTranslation(ctx context.Context, deps Deps, text string) *Handoff {
	h := newHandoff()
	go func() {
		h.complete(deps.Translate(ctx, text, deps.TargetLang))
	}()
	return h
}
