package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultGoogleBaseURL = "https://translate.googleapis.com"

// GoogleClient calls the unauthenticated gtx translate endpoint. Besides the
// translation itself it reports the source language the endpoint detected,
// which is what gates the dictionary lookup.
type GoogleClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewGoogleClient(timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		BaseURL:    defaultGoogleBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Translate returns (translatedText, detectedSourceLang). sourceLang is
// normally "auto" so the endpoint performs detection.
func (c *GoogleClient) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, string, error) {
	endpoint := fmt.Sprintf("%s/translate_a/single?client=gtx&sl=%s&tl=%s&dt=t&q=%s",
		c.BaseURL, url.QueryEscape(sourceLang), url.QueryEscape(targetLang), url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", "", &NetworkError{Kind: KindConnection, Cause: err}
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", "", classifyFetchError(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", &NetworkError{Kind: KindConnection, Cause: fmt.Errorf("endpoint returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", &NetworkError{Kind: KindConnection, Cause: err}
	}
	return parseTranslatePayload(body)
}

// parseTranslatePayload digs through the endpoint's nested array document:
// element 0 is an array of [translatedChunk, ...] arrays whose first strings
// concatenate into the full translation, element 2 is the detected source
// language code.
func parseTranslatePayload(body []byte) (string, string, error) {
	var doc []interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", "", &NetworkError{Kind: KindParse, Cause: err}
	}
	if len(doc) < 3 {
		return "", "", parseError("response document has fewer than three elements")
	}

	chunks, ok := doc[0].([]interface{})
	if !ok {
		return "", "", parseError("translation segments missing from response")
	}
	var b strings.Builder
	for _, item := range chunks {
		entry, ok := item.([]interface{})
		if !ok || len(entry) == 0 {
			continue
		}
		if s, ok := entry[0].(string); ok {
			b.WriteString(s)
		}
	}

	detected, ok := doc[2].(string)
	if !ok {
		return "", "", parseError("detected source language missing from response")
	}
	return b.String(), detected, nil
}
