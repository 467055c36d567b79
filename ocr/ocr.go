package ocr

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

type Config struct {
	// TessdataDir tells the engine where its .traineddata files live.
	// Empty means the system default. Passed explicitly so the process
	// environment never has to be mutated.
	TessdataDir string
}

// Engine is the OCR boundary: image bytes plus a language hint in, raw text
// out. Stateless between calls; each Extract gets a fresh tesseract client.
type Engine struct {
	tessdataDir string
}

func New(cfg Config) *Engine {
	return &Engine{tessdataDir: cfg.TessdataDir}
}

// Extract runs tesseract over an in-memory image. The hint is a single
// engine code or a "+"-joined set meaning "try all of these". Every failure
// here is fatal to the pipeline; there is no fallback engine.
func (e *Engine) Extract(imageData []byte, lang string) (string, error) {
	if len(imageData) == 0 {
		return "", errors.New("empty image buffer")
	}

	client := gosseract.NewClient()
	defer client.Close()

	if e.tessdataDir != "" {
		if err := client.SetTessdataPrefix(e.tessdataDir); err != nil {
			return "", fmt.Errorf("failed to set tessdata dir %s: %w", e.tessdataDir, err)
		}
	}
	if err := client.SetLanguage(strings.Split(lang, "+")...); err != nil {
		return "", fmt.Errorf("failed to set OCR language %q: %w", lang, err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to load image for OCR: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no text detected in image")
	}
	log.Printf("ocr: extracted %d bytes of text (lang=%s)", len(text), lang)
	return text, nil
}
