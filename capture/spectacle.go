package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SpectacleCapturer shells out to KDE's screenshot utility. The portal also
// works on Plasma, but spectacle's region mode behaves more predictably
// there.
type SpectacleCapturer struct{}

func (s *SpectacleCapturer) CaptureRegion(ctx context.Context) (string, error) {
	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("capture_%s.png", tempToken()))

	// -b background mode, -n no notification, -r region selection, -o output file
	cmd := exec.CommandContext(ctx, "spectacle", "-b", "-n", "-r", "-o", outPath)
	if err := cmd.Run(); err != nil {
		_ = os.Remove(outPath)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Pressing Esc during selection exits non-zero.
			return "", ErrCancelled
		}
		return "", &TransportError{Err: err}
	}
	return outPath, nil
}

func tempToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
