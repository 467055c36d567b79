package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"floating-dictionary/capture"
	"floating-dictionary/clipboard"
	"floating-dictionary/config"
	"floating-dictionary/logutil"
	"floating-dictionary/ocr"
	"floating-dictionary/pipeline"
	"floating-dictionary/translator"
	"floating-dictionary/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ocrLang := flag.String("ocr-lang", "", "OCR language hint: a tesseract code, a '+'-joined set, or 'auto'")
	target := flag.String("target", "", "Target language for translation (short code, e.g. 'th')")
	copyFlag := flag.Bool("copy", false, "Copy the translation to the clipboard")
	flag.Parse()

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		TargetLangOverride: *target,
		OCRLangOverride:    *ocrLang,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logutil.Setup(cfg.EnableFileLogging)

	engine := ocr.New(ocr.Config{TessdataDir: cfg.TessdataDir})
	orch := translator.New(time.Duration(cfg.HTTPTimeoutSec) * time.Second)

	deps := pipeline.Deps{
		Capture:    capture.Detect(),
		Extract:    engine.Extract,
		Translate:  orch.Translate,
		OCRLang:    ocr.ResolveHint(cfg.OCRLang, cfg.TargetLang),
		TargetLang: cfg.TargetLang,
	}

	ctx := context.Background()
	text, err := pipeline.CaptureText(ctx, deps)
	if err != nil {
		if errors.Is(err, capture.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Capture cancelled.")
			return nil
		}
		return err
	}
	log.Printf("main: OCR extracted %d bytes", len(text))

	handoff := pipeline.StartTranslation(ctx, deps, text)

	var onResult func(translator.CombinedTranslationData)
	if *copyFlag || cfg.CopyToClipboard {
		if err := clipboard.Init(); err != nil {
			log.Printf("main: clipboard unavailable: %v", err)
		} else {
			onResult = func(data translator.CombinedTranslationData) {
				clipboard.Write(data.GoogleTranslation)
			}
		}
	}

	ui.Show(text, handoff, onResult)
	return nil
}
