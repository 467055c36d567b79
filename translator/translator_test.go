package translator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floating-dictionary/longdo"
)

func stubGoogle(translation, detected string, err error) GoogleFunc {
	return func(ctx context.Context, text, targetLang, sourceLang string) (string, string, error) {
		return translation, detected, err
	}
}

func countingDict(calls *int, data *longdo.Data, err error) DictFunc {
	return func(ctx context.Context, word string) (*longdo.Data, error) {
		*calls++
		return data, err
	}
}

func sampleDictData() *longdo.Data {
	return &longdo.Data{
		Translations: []longdo.TranslationItem{
			{Word: "hello", Pos: "n", Translation: "การทักทาย", Dictionary: "NECTEC Lexitron Dictionary EN-TH"},
		},
		Examples: []longdo.ExampleItem{
			{Source: "She said hello.", Target: "เธอกล่าวสวัสดี"},
		},
	}
}

func TestDictionaryGatingTruthTable(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		detected  string
		target    string
		wantFetch bool
	}{
		{"word en->th fetches", "hello", "en", "th", true},
		{"phrase en->th skips", "hello there friend", "en", "th", false},
		{"word ru->th skips", "привет", "ru", "th", false},
		{"word en->ja skips", "hello", "en", "ja", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			o := NewWithFetchers(
				stubGoogle("แปลแล้ว", tc.detected, nil),
				countingDict(&calls, sampleDictData(), nil),
			)
			data := o.Translate(context.Background(), tc.text, tc.target)

			if tc.wantFetch {
				assert.Equal(t, 1, calls, "dictionary should have been queried")
				require.NotNil(t, data.LongdoData)
			} else {
				assert.Equal(t, 0, calls, "dictionary should not have been queried")
				assert.Nil(t, data.LongdoData)
			}
		})
	}
}

func TestTranslateNeverFailsOnGoogleError(t *testing.T) {
	calls := 0
	o := NewWithFetchers(
		stubGoogle("", "", &NetworkError{Kind: KindTimeout, Cause: errors.New("deadline exceeded")}),
		countingDict(&calls, sampleDictData(), nil),
	)
	data := o.Translate(context.Background(), "hello", "th")

	assert.Contains(t, data.GoogleTranslation, "Translation failed")
	// Without a detected source language the dictionary gate stays closed.
	assert.Equal(t, 0, calls)
	assert.Nil(t, data.LongdoData)
	assert.Equal(t, "AUTO", data.SourceLang)
	assert.Equal(t, "TH", data.TargetLang)
}

func TestTranslateSurvivesDictionaryError(t *testing.T) {
	calls := 0
	o := NewWithFetchers(
		stubGoogle("สวัสดี", "en", nil),
		countingDict(&calls, nil, errors.New("connection refused")),
	)
	data := o.Translate(context.Background(), "hello", "th")

	assert.Equal(t, 1, calls)
	assert.Nil(t, data.LongdoData)
	assert.Equal(t, "สวัสดี", data.GoogleTranslation)
}

func TestTranslateTrimsAndUppercases(t *testing.T) {
	o := NewWithFetchers(stubGoogle("สวัสดี", "en", nil), countingDict(new(int), sampleDictData(), nil))
	data := o.Translate(context.Background(), "  hello \n", "th")

	assert.Equal(t, "hello", data.SearchWord)
	assert.Equal(t, "EN", data.SourceLang)
	assert.Equal(t, "TH", data.TargetLang)
}

func TestCombinedTranslationDataRoundTrip(t *testing.T) {
	original := CombinedTranslationData{
		SearchWord:        "hello",
		SourceLang:        "EN",
		TargetLang:        "TH",
		GoogleTranslation: "สวัสดี",
		LongdoData:        sampleDictData(),
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded CombinedTranslationData
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original, decoded)
}

func TestTranslateEndToEnd(t *testing.T) {
	googleSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[["สวัสดี","hello",null,null,10]],null,"en"]`))
	}))
	defer googleSrv.Close()

	dictSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
<b>NECTEC Lexitron Dictionary EN-TH</b>
<table class="result-table"><tbody><tr><td>hello</td><td>(n) การทักทาย</td></tr></tbody></table>
</body></html>`))
	}))
	defer dictSrv.Close()

	gc := NewGoogleClient(5 * time.Second)
	gc.BaseURL = googleSrv.URL
	dc := longdo.NewClient(5 * time.Second)
	dc.BaseURL = dictSrv.URL
	o := NewWithFetchers(gc.Translate, dc.Lookup)

	data := o.Translate(context.Background(), "hello", "th")

	assert.Equal(t, "EN", data.SourceLang)
	assert.Equal(t, "TH", data.TargetLang)
	assert.NotEmpty(t, data.GoogleTranslation)
	require.NotNil(t, data.LongdoData)
	require.NotEmpty(t, data.LongdoData.Translations)
	assert.Equal(t, "NECTEC Lexitron Dictionary EN-TH", data.LongdoData.Translations[0].Dictionary)
}
