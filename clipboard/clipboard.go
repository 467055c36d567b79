package clipboard

import (
	"golang.design/x/clipboard"
)

// Init must succeed before Write is used; it fails on sessions without a
// clipboard (e.g. no X display).
func Init() error {
	return clipboard.Init()
}

// Write places text on the system clipboard. The underlying call returns a
// change-notification channel, not an error.
func Write(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}
