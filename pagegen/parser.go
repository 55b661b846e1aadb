package pagegen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// fencedJSONRegex extracts the body of a markdown code fence explicitly
// labeled json, case-insensitively.
var fencedJSONRegex = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")

// extractStrategy pulls a JSON candidate out of raw model text. An empty
// return means the strategy did not apply.
type extractStrategy func(raw string) string

// extractStrategies is tried in order, first non-empty result wins. The
// order is behaviorally significant: an explicit json fence always beats
// brace scanning.
var extractStrategies = []extractStrategy{
	extractFencedJSON,
	extractBraceSpan,
}

func extractFencedJSON(raw string) string {
	m := fencedJSONRegex.FindStringSubmatch(raw)
	if len(m) > 1 {
		return m[1]
	}
	return ""
}

func extractBraceSpan(raw string) string {
	open := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if open < 0 || end < 0 || end <= open {
		return ""
	}
	return raw[open : end+1]
}

// extractCandidate applies the ordered strategies, falling back to the whole
// raw text when none matches.
func extractCandidate(raw string) string {
	for _, strat := range extractStrategies {
		if c := strat(raw); c != "" {
			return c
		}
	}
	return raw
}

// parseResponse decodes raw model text into an EditResult. prev is the
// page as it stood before the request; it backs every fallback. A missing
// or null files member is a parse failure, but individual file fields fall
// back one by one so a single omission never discards the other two.
func (c *Client) parseResponse(raw string, prev PageFiles) EditResult {
	candidate := extractCandidate(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		c.logger.Warn("model response did not decode as JSON",
			zap.Error(err), zap.Int("candidate_len", len(candidate)))
		return parseFailureResult(prev)
	}

	rawFiles, ok := obj["files"]
	if !ok || rawFiles == nil {
		c.logger.Warn("decoded model response has no files member")
		return parseFailureResult(prev)
	}
	// A non-object files value is treated as an object with every field
	// absent, so the per-field defaults carry the whole previous page.
	filesObj, _ := rawFiles.(map[string]any)

	return EditResult{
		Summary: coalesceString(obj, "summary", defaultSummary),
		Files: PageFiles{
			HTML: coalesceString(filesObj, "html", prev.HTML),
			CSS:  coalesceString(filesObj, "css", prev.CSS),
			JS:   coalesceString(filesObj, "js", prev.JS),
		},
	}
}

// coalesceString reads m[key] coerced to a string, falling back per field
// (never per object) when the key is absent or null.
func coalesceString(m map[string]any, key, fallback string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
