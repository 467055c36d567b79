package longdo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><body>
<b>Nontri Dictionary</b>
<p>intervening noise</p>
<table class="result-table">
<tbody>
<tr><td>hello</td><td>(int) คำทักทาย</td></tr>
</tbody>
</table>
<b>NECTEC Lexitron Dictionary EN-TH</b>
<table class="unrelated"><tbody><tr><td>x</td><td>y</td></tr></tbody></table>
<table class="result-table">
<tbody>
<tr><td>hello</td><td>(n) การทักทาย</td></tr>
<tr><td>hello</td><td>(vt) v. ทักทาย</td></tr>
<tr><td></td><td>orphan definition</td></tr>
<tr><td>lonely cell</td></tr>
</tbody>
</table>
<b>ตัวอย่างประโยค</b>
<table class="result-table">
<tbody>
<tr><td><font color="black">She said hello.</font></td><td><font color="black">เธอกล่าวสวัสดี</font></td></tr>
<tr><td><font color="black">only one span</font></td></tr>
<tr><td><font color="black">a</font><font color="black">b</font><font color="black">c</font></td></tr>
<tr><td><font color="red">wrong</font><font color="red">color</font></td></tr>
</tbody>
</table>
</body></html>`

func TestParseSamplePage(t *testing.T) {
	data := Parse(samplePage)
	require.NotNil(t, data)

	// Translations follow dictionary priority, not document order: the
	// NECTEC entries come first even though Nontri appears earlier in the
	// markup.
	require.Len(t, data.Translations, 3)
	assert.Equal(t, "NECTEC Lexitron Dictionary EN-TH", data.Translations[0].Dictionary)
	assert.Equal(t, "NECTEC Lexitron Dictionary EN-TH", data.Translations[1].Dictionary)
	assert.Equal(t, "Nontri Dictionary", data.Translations[2].Dictionary)

	assert.Equal(t, "n", data.Translations[0].Pos)
	assert.Equal(t, "การทักทาย", data.Translations[0].Translation)
	// Inline tag wins over the parenthetical.
	assert.Equal(t, "v", data.Translations[1].Pos)
	assert.Equal(t, "ทักทาย", data.Translations[1].Translation)
	assert.Equal(t, "int", data.Translations[2].Pos)

	// Only the two-span row yields an example pair.
	require.Len(t, data.Examples, 1)
	assert.Equal(t, "She said hello.", data.Examples[0].Source)
	assert.Equal(t, "เธอกล่าวสวัสดี", data.Examples[0].Target)
}

func TestParseHeadingWithoutTable(t *testing.T) {
	// A matching heading whose sibling chain ends before any result table
	// contributes nothing.
	page := `<html><body><b>Hope Dictionary</b><p>trailing text</p></body></html>`
	data := Parse(page)
	require.NotNil(t, data)
	assert.Empty(t, data.Translations)
	assert.Empty(t, data.Examples)
}

func TestParseIgnoresNonResultTables(t *testing.T) {
	page := `<html><body>
<b>Hope Dictionary</b>
<table class="layout"><tbody><tr><td>skip</td><td>me</td></tbody></table>
</body></html>`
	data := Parse(page)
	assert.Empty(t, data.Translations)
}

func TestParseGarbageInput(t *testing.T) {
	for _, in := range []string{"", "not html at all", "<table><tr>"} {
		data := Parse(in)
		require.NotNil(t, data)
		assert.Empty(t, data.Translations)
		assert.Empty(t, data.Examples)
	}
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mobile.php", r.URL.Path)
		assert.Equal(t, "hello", r.URL.Query().Get("search"))
		// The endpoint alters its output for non-browser agents.
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	c.BaseURL = srv.URL

	data, err := c.Lookup(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, data.Translations, 3)
	require.Len(t, data.Examples, 1)
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	c.BaseURL = srv.URL

	_, err := c.Lookup(context.Background(), "hello")
	require.Error(t, err)
}
