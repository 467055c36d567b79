// Package ui is the thin presentation layer: one floating window that shows
// the OCR text immediately and swaps in the translation when the pipeline
// handoff delivers it. No logic beyond rendering lives here.
package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"floating-dictionary/pipeline"
	"floating-dictionary/translator"
)

// maxExamplesShown truncates the example list for display; the underlying
// data keeps the full list.
const maxExamplesShown = 2

const pollInterval = 100 * time.Millisecond

// Show opens the result window and blocks until it is closed. onResult, if
// non-nil, runs once when the translation lands (used for clipboard
// delivery).
func Show(searchText string, h *pipeline.Handoff, onResult func(translator.CombinedTranslationData)) {
	a := app.New()
	w := a.NewWindow("Floating Dictionary")
	w.Resize(fyne.NewSize(500, 300))

	content := container.NewVBox(
		heading(searchText),
		widget.NewLabel("Translating..."),
	)
	w.SetContent(container.NewVScroll(content))

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				data, ok := h.Poll()
				if !ok {
					continue
				}
				if onResult != nil {
					onResult(data)
				}
				fyne.Do(func() {
					content.Objects = []fyne.CanvasObject{render(data)}
					content.Refresh()
				})
				return
			}
		}
	}()
	w.SetOnClosed(func() { close(stop) })

	w.ShowAndRun()
}

func render(data translator.CombinedTranslationData) fyne.CanvasObject {
	box := container.NewVBox(
		heading(data.SearchWord),
		widget.NewSeparator(),
		sectionHeader(fmt.Sprintf("Google (%s):", data.TargetLang)),
		wrapped("• "+data.GoogleTranslation),
	)

	if data.LongdoData != nil {
		if len(data.LongdoData.Translations) > 0 {
			box.Add(sectionHeader("Longdo Dict:"))
			for _, item := range data.LongdoData.Translations {
				box.Add(wrapped(fmt.Sprintf("• %s [%s]", item.Word, item.Pos)))
				box.Add(wrapped(fmt.Sprintf("   %s (%s)", item.Translation, item.Dictionary)))
			}
		}
		if len(data.LongdoData.Examples) > 0 {
			box.Add(sectionHeader("Example Sentences (Longdo):"))
			examples := data.LongdoData.Examples
			if len(examples) > maxExamplesShown {
				examples = examples[:maxExamplesShown]
			}
			for _, ex := range examples {
				box.Add(wrapped(fmt.Sprintf("• %s: %s", data.SourceLang, ex.Source)))
				box.Add(wrapped(fmt.Sprintf("   → %s: %s", data.TargetLang, ex.Target)))
			}
		}
	}
	return box
}

func heading(text string) *widget.Label {
	l := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	l.Wrapping = fyne.TextWrapWord
	return l
}

func sectionHeader(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func wrapped(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}
