package pagegen

import "strconv"

const (
	minVariants = 2
	maxVariants = 5
)

// findVariantCall picks the first generate_variants invocation, if any.
func findVariantCall(calls []toolCall) (toolCall, bool) {
	for _, call := range calls {
		if call.Name == variantToolName {
			return call, true
		}
	}
	return toolCall{}, false
}

// interpretVariantCall turns loosely typed tool-call arguments into a
// bounded VariantPlan. Files pass through unchanged; producing the actual
// variants is deferred to a later step, so no further model interaction
// happens here.
func interpretVariantCall(call toolCall, files PageFiles) EditResult {
	return EditResult{
		Summary: variantsInProgressSummary,
		Files:   files,
		Variants: &VariantPlan{
			Count:        coerceCount(call.Args["count"]),
			Instructions: coerceInstructions(call.Args["instructions"]),
		},
	}
}

// coerceCount turns an arbitrary argument into a variant count. Anything
// that is not a valid positive number becomes minVariants; valid numbers
// are clamped into [minVariants, maxVariants].
func coerceCount(v any) int {
	n, ok := toNumber(v)
	if !ok || n <= 0 {
		return minVariants
	}
	count := int(n)
	if count < minVariants {
		return minVariants
	}
	if count > maxVariants {
		return maxVariants
	}
	return count
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(t, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// coerceInstructions accepts the argument verbatim only when it is a proper
// ordered sequence of strings; any other shape yields an empty sequence.
// The length is deliberately not reconciled with the count.
func coerceInstructions(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return []string{}
			}
			out[i] = s
		}
		return out
	default:
		return []string{}
	}
}
