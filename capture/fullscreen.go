package capture

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kbinani/screenshot"
)

// FullscreenCapturer grabs the whole virtual screen without any user
// interaction. Last-resort strategy for sessions with neither a portal nor
// spectacle; OCR then runs over everything visible.
type FullscreenCapturer struct{}

func (f *FullscreenCapturer) CaptureRegion(ctx context.Context) (string, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return "", &TransportError{Err: errors.New("no active displays found")}
	}

	// Union of all display bounds, captured as one rectangle.
	union := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		union = union.Union(screenshot.GetDisplayBounds(i))
	}
	img, err := screenshot.CaptureRect(union)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("capture_%s.png", tempToken()))
	out, err := os.Create(outPath)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		_ = os.Remove(outPath)
		return "", &TransportError{Err: err}
	}
	return outPath, nil
}
