package translator

import "floating-dictionary/longdo"

// CombinedTranslationData is the terminal artifact of the pipeline, handed
// to the presentation layer through the result handoff. It is built only by
// the orchestrator and read-only afterwards. LongdoData is nil whenever the
// dictionary lookup was skipped or failed.
type CombinedTranslationData struct {
	SearchWord        string       `json:"search_word"`
	SourceLang        string       `json:"source_lang"`
	TargetLang        string       `json:"target_lang"`
	GoogleTranslation string       `json:"google_translation"`
	LongdoData        *longdo.Data `json:"longdo_data,omitempty"`
}
