// Package translator decides which remote sources to query for a piece of
// extracted text, fetches them, and merges the answers into one result.
package translator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"floating-dictionary/longdo"
	"floating-dictionary/textutil"
)

// Longdo covers English headwords with Thai definitions; the dictionary is
// only worth querying when both ends line up.
const (
	dictSourceLang = "en"
	dictTargetLang = "th"
)

// GoogleFunc matches GoogleClient.Translate; DictFunc matches
// longdo Client.Lookup. Injected so tests can stub the network.
type (
	GoogleFunc func(ctx context.Context, text, targetLang, sourceLang string) (string, string, error)
	DictFunc   func(ctx context.Context, word string) (*longdo.Data, error)
)

type Orchestrator struct {
	google GoogleFunc
	dict   DictFunc
}

// New wires the orchestrator to the real remote clients with a shared
// timeout.
func New(timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		google: NewGoogleClient(timeout).Translate,
		dict:   longdo.NewClient(timeout).Lookup,
	}
}

// NewWithFetchers builds an orchestrator over caller-supplied fetchers.
func NewWithFetchers(google GoogleFunc, dict DictFunc) *Orchestrator {
	return &Orchestrator{google: google, dict: dict}
}

// shouldFetchDictionary is the gating rule, a pure function of the three
// inputs: only single tokens whose detected source and requested target
// match the dictionary's language pair get a lookup.
func shouldFetchDictionary(singleWord bool, detectedSourceLang, targetLang string) bool {
	return singleWord && detectedSourceLang == dictSourceLang && targetLang == dictTargetLang
}

// Translate never fails outward. Remote fetch errors degrade into an inline
// error string or an absent dictionary section, so the presentation layer
// always receives a displayable result.
func (o *Orchestrator) Translate(ctx context.Context, text, targetLang string) CombinedTranslationData {
	searchWord := strings.TrimSpace(text)

	translation, detected, err := o.google(ctx, searchWord, targetLang, "auto")
	if err != nil {
		log.Printf("translator: google translate failed: %v", err)
		translation = fmt.Sprintf("Translation failed: %v", err)
		detected = "auto"
	}

	// The dictionary fetch is gated on the language Google detected, so it
	// has to run after the translate call completes. The latency cost is
	// accepted; querying the dictionary for non-English words is worse.
	var dictData *longdo.Data
	if shouldFetchDictionary(textutil.IsSingleWord(searchWord), detected, targetLang) {
		data, derr := o.dict(ctx, searchWord)
		if derr != nil {
			log.Printf("translator: longdo lookup failed: %v", derr)
		} else {
			dictData = data
		}
	}

	return CombinedTranslationData{
		SearchWord:        searchWord,
		SourceLang:        strings.ToUpper(detected),
		TargetLang:        strings.ToUpper(targetLang),
		GoogleTranslation: translation,
		LongdoData:        dictData,
	}
}
