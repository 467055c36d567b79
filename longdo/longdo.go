// Package longdo fetches and parses dictionary pages from dict.longdo.com.
// The markup is uncontrolled third-party content, so parsing never fails:
// anything unrecognized simply contributes nothing.
package longdo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	defaultBaseURL = "https://dict.longdo.com"
	// The endpoint serves different (or no) markup to non-browser agents.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// Bold heading above the example sentence table ("example sentences").
	examplesAnchor = "ตัวอย่างประโยค"
	// Class marker on the tables that hold actual results.
	tableClassMarker = "result-table"
)

// dictionaryPriority lists the dictionaries probed, in order. Output
// translations follow this order.
var dictionaryPriority = []string{
	"NECTEC Lexitron Dictionary EN-TH",
	"Nontri Dictionary",
	"Hope Dictionary",
}

// TranslationItem is one dictionary sense entry.
type TranslationItem struct {
	Word        string `json:"word"`
	Pos         string `json:"pos"`
	Translation string `json:"translation"`
	Dictionary  string `json:"dictionary"`
}

// ExampleItem is a parallel example sentence pair.
type ExampleItem struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Data holds everything extracted from one dictionary page. Examples keep
// document order and are not truncated here; how many to show is the
// presentation layer's call.
type Data struct {
	Translations []TranslationItem `json:"translations"`
	Examples     []ExampleItem     `json:"examples"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Lookup fetches the mobile search page for word and parses it.
func (c *Client) Lookup(ctx context.Context, word string) (*Data, error) {
	// The word goes in verbatim; the endpoint handles its own decoding and
	// gated lookups only ever send plain English headwords.
	endpoint := fmt.Sprintf("%s/mobile.php?search=%s", c.BaseURL, word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build longdo request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("longdo request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("longdo returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read longdo response: %w", err)
	}
	return Parse(string(body)), nil
}

// Parse extracts translation entries and example pairs from a result page.
// Partial or empty output is valid output.
func Parse(htmlText string) *Data {
	data := &Data{}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return data
	}

	for _, dict := range dictionaryPriority {
		name := dict
		table := findTableAfterHeading(doc, func(text string) bool {
			return strings.Contains(text, name)
		})
		if table == nil {
			continue
		}
		parseTranslationTable(table, name, data)
	}

	if table := findTableAfterHeading(doc, func(text string) bool {
		return strings.Contains(text, examplesAnchor)
	}); table != nil {
		parseExampleTable(table, data)
	}
	return data
}

// findTableAfterHeading scans the document's bold heading nodes for one
// whose text matches, then walks that node's forward sibling chain until a
// result table turns up. Returns nil when the heading is absent or no table
// follows it before the chain ends.
func findTableAfterHeading(doc *goquery.Document, match func(string) bool) *html.Node {
	var found *html.Node
	doc.Find("b").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !match(s.Text()) {
			return true
		}
		if table := scanSiblings(s.Get(0), isResultTable); table != nil {
			found = table
			return false
		}
		return true
	})
	return found
}

// scanSiblings walks forward siblings of node until shape matches, skipping
// everything else. Gives up at the end of the chain.
func scanSiblings(node *html.Node, shape func(*html.Node) bool) *html.Node {
	for n := node.NextSibling; n != nil; n = n.NextSibling {
		if shape(n) {
			return n
		}
	}
	return nil
}

func isResultTable(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data != "table" {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "class" && strings.Contains(attr.Val, tableClassMarker) {
			return true
		}
	}
	return false
}

func parseTranslationTable(table *html.Node, dictName string, data *Data) {
	goquery.NewDocumentFromNode(table).Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() != 2 {
			return
		}
		word := strings.TrimSpace(cells.Eq(0).Text())
		definition := strings.TrimSpace(cells.Eq(1).Text())
		if word == "" || definition == "" {
			return
		}
		pos, translation := parseDefinition(definition)
		data.Translations = append(data.Translations, TranslationItem{
			Word:        word,
			Pos:         pos,
			Translation: translation,
			Dictionary:  dictName,
		})
	})
}

// Example rows hold exactly two black font spans: source sentence then
// target sentence. Any other shape is skipped silently.
func parseExampleTable(table *html.Node, data *Data) {
	goquery.NewDocumentFromNode(table).Find("tr").Each(func(_ int, row *goquery.Selection) {
		spans := row.Find(`font[color="black"]`)
		if spans.Length() != 2 {
			return
		}
		source := strings.TrimSpace(spans.Eq(0).Text())
		target := strings.TrimSpace(spans.Eq(1).Text())
		if source == "" || target == "" {
			return
		}
		data.Examples = append(data.Examples, ExampleItem{Source: source, Target: target})
	})
}
