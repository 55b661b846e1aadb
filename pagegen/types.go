package pagegen

// Provider identifies which backend to use. No auto-detection in this step.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderOpenAI Provider = "openai"
)

// Role tags a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// PageFiles is the editable three-file page. A valid instance is always fully
// populated; the pipeline never returns a partially blanked triplet.
type PageFiles struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// ChatTurn is one entry of the prior conversation, in original order.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Attachment references inline binary input as a self-describing data URI
// (data:<media-type>;base64,<payload>). MediaType, when set, overrides the
// type embedded in the URI.
type Attachment struct {
	DataURI   string `json:"data_uri"`
	MediaType string `json:"media_type,omitempty"`
}

// EditRequest is one page-generation request.
type EditRequest struct {
	// Instructions is the latest free-form user input. May be empty.
	Instructions string

	// History is the prior conversation, oldest first.
	History []ChatTurn

	// Files is the current page content the model should edit.
	Files PageFiles

	// Attachments are optional images sent alongside the instructions.
	Attachments []Attachment

	// AllowVariants registers the variant-generation tool with the model.
	AllowVariants bool
}

// VariantPlan asks a later step to produce Count alternative versions of the
// page. Count is always within [2,5]. Instructions carries one entry per
// variant when the model supplied them; its length is deliberately not
// validated against Count.
type VariantPlan struct {
	Count        int      `json:"count"`
	Instructions []string `json:"instructions"`
}

// EditResult is the outcome of GeneratePage. Files is never empty-on-failure:
// every failure path carries the request's files through untouched. When
// Variants is non-nil, Files equals the input unchanged and actual variant
// production is deferred to a later step.
type EditResult struct {
	Summary  string       `json:"summary"`
	Files    PageFiles    `json:"files"`
	Variants *VariantPlan `json:"variants,omitempty"`
}
