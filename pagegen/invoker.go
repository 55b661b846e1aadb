package pagegen

import "context"

// modelInvoker is the internal interface each backend implements. The
// pipeline makes at most one invoke call per request; retries, if any, are
// the backend's own business and none are configured here.
type modelInvoker interface {
	// invoke sends the built parts to the model. When allowVariants is set
	// the backend registers the generate_variants tool; otherwise no tools
	// are declared. The response is either one or more tool calls or raw
	// text, never both.
	invoke(ctx context.Context, parts []promptPart, allowVariants bool) (invokeResult, error)
}

// promptPart is one ordered element of the multimodal prompt, normalized
// away from any provider's wire shape. Exactly one of Text or Data is set.
type promptPart struct {
	Text string

	// Inline binary payload with its media type.
	Data     []byte
	MIMEType string
}

func textPart(s string) promptPart { return promptPart{Text: s} }

// toolCall is a structured invocation requested by the model. Args carries
// the provider-decoded arguments as loosely typed JSON; interpretation and
// coercion happen in variants.go.
type toolCall struct {
	Name string
	Args map[string]any
}

// invokeResult is the provider-agnostic outcome of one model invocation.
type invokeResult struct {
	Calls []toolCall
	Text  string
}

// variantToolName is the single tool the pipeline ever declares.
const variantToolName = "generate_variants"

// variantToolDescription is shared by both backends verbatim.
const variantToolDescription = "Generate multiple variations of the page. Use this when the user asks for several alternative versions or designs."

// variantToolSchema is the JSON-schema parameter declaration for
// generate_variants, kept as a plain schema object so each backend can hand
// it to its SDK unchanged.
func variantToolSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"count": map[string]any{
				"type":        "number",
				"description": "How many variants to generate, between 2 and 5.",
			},
			"instructions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "One short instruction per variant describing how it should differ.",
			},
		},
	}
}
