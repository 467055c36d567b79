package capture

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

// ErrCancelled is returned when the user dismisses the selection UI. It is
// the only non-failure way a capture ends without an image.
var ErrCancelled = errors.New("capture cancelled by user")

// ProtocolError marks a malformed or incomplete portal response.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("capture protocol error: %s", e.Reason)
}

// TransportError marks a bus, subprocess, or display failure underneath the
// capture protocol.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("capture transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Capturer performs one interactive screen-region capture and yields the
// path of a temporary raster image. The file is producer-owned until read;
// callers consume it with ReadAndRemove.
type Capturer interface {
	CaptureRegion(ctx context.Context) (string, error)
}

// Detect selects a capture strategy once at startup. KDE sessions get the
// spectacle subprocess, anything with a reachable session bus gets the
// desktop portal, and headless-ish environments fall back to a
// non-interactive full-screen grab.
func Detect() Capturer {
	de := strings.ToUpper(os.Getenv("XDG_CURRENT_DESKTOP"))
	if strings.Contains(de, "KDE") {
		log.Printf("capture: KDE session detected, using spectacle")
		return &SpectacleCapturer{}
	}
	if p, err := NewPortalCapturer(); err == nil {
		log.Printf("capture: using desktop portal")
		return p
	} else {
		log.Printf("capture: session bus unavailable (%v), falling back to full-screen grab", err)
	}
	return &FullscreenCapturer{}
}

// ReadAndRemove loads a finished capture into memory and deletes the
// temporary file. Removal is best-effort; the image bytes are what matter.
func ReadAndRemove(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		log.Printf("Warning: could not remove temp capture %s: %v", path, err)
	}
	return data, nil
}
