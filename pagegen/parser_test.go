package pagegen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var prevFiles = PageFiles{HTML: "<old>", CSS: "old{}", JS: "old();"}

func newTestClient() *Client {
	return New(Config{APIKey: "test-key"})
}

func TestParseResponse_FencedJSON(t *testing.T) {
	raw := "Here you go:\n```json\n{\"summary\":\"done\",\"files\":{\"html\":\"<new>\",\"css\":\"new{}\",\"js\":\"new();\"}}\n```\nEnjoy!"

	res := newTestClient().parseResponse(raw, prevFiles)

	assert.Equal(t, "done", res.Summary)
	assert.Equal(t, PageFiles{HTML: "<new>", CSS: "new{}", JS: "new();"}, res.Files)
	assert.Nil(t, res.Variants)
}

func TestParseResponse_FenceLabelCaseInsensitive(t *testing.T) {
	raw := "```JSON\n{\"files\":{\"html\":\"<a>\",\"css\":\"b\",\"js\":\"c\"}}\n```"
	res := newTestClient().parseResponse(raw, prevFiles)
	assert.Equal(t, PageFiles{HTML: "<a>", CSS: "b", JS: "c"}, res.Files)
}

func TestParseResponse_FencePrecedesBraceScan(t *testing.T) {
	// The stray brace before the fence must not win over the labeled block.
	raw := "context { ignored\n```json\n{\"files\":{\"html\":\"<a>\",\"css\":\"b\",\"js\":\"c\"}}\n```"
	res := newTestClient().parseResponse(raw, prevFiles)
	assert.Equal(t, "<a>", res.Files.HTML)
}

func TestParseResponse_BraceScan(t *testing.T) {
	raw := `Sure thing! {"summary":"ok","files":{"html":"<a>","css":"b","js":"c"}} Hope that helps.`
	res := newTestClient().parseResponse(raw, prevFiles)
	assert.Equal(t, "ok", res.Summary)
	assert.Equal(t, PageFiles{HTML: "<a>", CSS: "b", JS: "c"}, res.Files)
}

func TestParseResponse_BareJSON(t *testing.T) {
	raw := `{"summary":"ok","files":{"html":"<a>","css":"b","js":"c"}}`
	res := newTestClient().parseResponse(raw, prevFiles)
	assert.Equal(t, PageFiles{HTML: "<a>", CSS: "b", JS: "c"}, res.Files)
}

func TestParseResponse_PartialFields(t *testing.T) {
	// css absent: keep the prior css, adopt the new html/js.
	raw := `{"files":{"html":"<a>","js":"c"}}`
	res := newTestClient().parseResponse(raw, prevFiles)
	assert.Equal(t, PageFiles{HTML: "<a>", CSS: "old{}", JS: "c"}, res.Files)
}

func TestParseResponse_NullFieldFallsBack(t *testing.T) {
	raw := `{"files":{"html":null,"css":"b","js":"c"}}`
	res := newTestClient().parseResponse(raw, prevFiles)
	assert.Equal(t, PageFiles{HTML: "<old>", CSS: "b", JS: "c"}, res.Files)
}

func TestParseResponse_SummaryDefaults(t *testing.T) {
	raw := `{"files":{"html":"<a>","css":"b","js":"c"}}`
	res := newTestClient().parseResponse(raw, prevFiles)
	assert.Equal(t, defaultSummary, res.Summary)
}

func TestParseResponse_NonExtractableText(t *testing.T) {
	res := newTestClient().parseResponse("I could not help with that.", prevFiles)
	assert.Equal(t, parseFailureSummary, res.Summary)
	assert.Equal(t, prevFiles, res.Files)
}

func TestParseResponse_MissingFilesMember(t *testing.T) {
	res := newTestClient().parseResponse(`{"summary":"no files here"}`, prevFiles)
	assert.Equal(t, parseFailureSummary, res.Summary)
	assert.Equal(t, prevFiles, res.Files)
}

func TestParseResponse_NullFilesMember(t *testing.T) {
	res := newTestClient().parseResponse(`{"files":null}`, prevFiles)
	assert.Equal(t, parseFailureSummary, res.Summary)
	assert.Equal(t, prevFiles, res.Files)
}

func TestParseResponse_NonObjectFilesDefaultsPerField(t *testing.T) {
	// A files member of the wrong shape is not a hard failure; every field
	// falls back to the previous page.
	res := newTestClient().parseResponse(`{"summary":"odd","files":"oops"}`, prevFiles)
	assert.Equal(t, "odd", res.Summary)
	assert.Equal(t, prevFiles, res.Files)
}

func TestParseResponse_RoundTripIdempotent(t *testing.T) {
	first := newTestClient().parseResponse(
		`{"summary":"s","files":{"html":"<a>","css":"b","js":"c"}}`, prevFiles)

	encoded, err := json.Marshal(map[string]any{
		"summary": first.Summary,
		"files":   first.Files,
	})
	require.NoError(t, err)

	second := newTestClient().parseResponse(string(encoded), prevFiles)
	assert.Equal(t, first.Files, second.Files)
}

func TestExtractCandidate_FallsBackToWholeText(t *testing.T) {
	assert.Equal(t, "no braces at all", extractCandidate("no braces at all"))
}

func TestExtractBraceSpan_RequiresCloseAfterOpen(t *testing.T) {
	assert.Equal(t, "", extractBraceSpan("} reversed {"))
	assert.Equal(t, "", extractBraceSpan("only { open"))
}
