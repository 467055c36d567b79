package pipeline

import "floating-dictionary/translator"

// Handoff is a single-producer, single-consumer, one-shot handoff from the
// background worker to the presentation layer. The producer sends exactly
// one value; the consumer polls non-blockingly once per redraw tick and must
// never block on the worker.
type Handoff struct {
	ch chan translator.CombinedTranslationData
}

func newHandoff() *Handoff {
	return &Handoff{ch: make(chan translator.CombinedTranslationData, 1)}
}

func (h *Handoff) complete(data translator.CombinedTranslationData) {
	h.ch <- data
}

// Poll returns the result if it has landed. Safe to call repeatedly; after
// the single value is consumed it reports false forever.
func (h *Handoff) Poll() (translator.CombinedTranslationData, bool) {
	select {
	case data := <-h.ch:
		return data, true
	default:
		return translator.CombinedTranslationData{}, false
	}
}
