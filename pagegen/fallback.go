package pagegen

import "fmt"

// User-facing summaries. The parse and invocation failures are deliberately
// worded differently so callers can tell them apart.
const (
	defaultSummary            = "Updated the page."
	variantsInProgressSummary = "Generating multiple variants of the page..."
	missingKeySummary         = "No API key is configured, so the page could not be generated. Set an API key and try again."
	parseFailureSummary       = "The model response could not be understood, so your files were left unchanged."
	invocationFailureFormat   = "Something went wrong while generating the page, so your files were left unchanged. (%v)"
)

// placeholderHTML is the fixed page returned when no credential is
// configured.
const placeholderHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Setup required</title>
</head>
<body>
  <h1>Setup required</h1>
  <p>Configure an API key to start generating this page.</p>
</body>
</html>
`

// missingKeyResult is the canned ConfigurationMissing fallback. It is
// byte-for-byte identical regardless of request content and is returned
// before any network interaction.
func missingKeyResult() EditResult {
	return EditResult{
		Summary: missingKeySummary,
		Files:   PageFiles{HTML: placeholderHTML, CSS: "", JS: ""},
	}
}

// invocationFailureResult preserves the request's files and surfaces a
// rendering of the underlying failure in the summary.
func invocationFailureResult(files PageFiles, err error) EditResult {
	return EditResult{
		Summary: fmt.Sprintf(invocationFailureFormat, err),
		Files:   files,
	}
}

// parseFailureResult preserves the previous files behind a fixed summary.
func parseFailureResult(prev PageFiles) EditResult {
	return EditResult{
		Summary: parseFailureSummary,
		Files:   prev,
	}
}
