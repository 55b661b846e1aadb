package pagegen

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// pageContract is the instruction that pins the model to the three-file
// output shape. The current files are appended verbatim below it.
const pageContract = `You are editing a single web page made of exactly three files: index.html, styles.css and script.js.
Apply the user's request to the current files and respond with a JSON object of the shape
{"summary": string, "files": {"html": string, "css": string, "js": string}}.
Each file must be returned in full, not as a diff. Do not add any text outside the JSON object.`

// buildParts turns a request into the ordered multimodal prompt. The order
// is significant and fixed: contract plus current files, then history when
// present, then the latest instructions (always emitted, even when empty),
// then one inline part per decodable attachment in original order.
func buildParts(req EditRequest) []promptPart {
	parts := make([]promptPart, 0, 3+len(req.Attachments))

	var sb strings.Builder
	sb.WriteString(pageContract)
	sb.WriteString("\n\nCurrent files:\n\n--- index.html ---\n")
	sb.WriteString(req.Files.HTML)
	sb.WriteString("\n--- styles.css ---\n")
	sb.WriteString(req.Files.CSS)
	sb.WriteString("\n--- script.js ---\n")
	sb.WriteString(req.Files.JS)
	parts = append(parts, textPart(sb.String()))

	if len(req.History) > 0 {
		lines := make([]string, len(req.History))
		for i, turn := range req.History {
			lines[i] = fmt.Sprintf("%s: %s", strings.ToUpper(string(turn.Role)), turn.Content)
		}
		parts = append(parts, textPart("Conversation so far:\n"+strings.Join(lines, "\n")))
	}

	parts = append(parts, textPart(req.Instructions))

	for _, att := range req.Attachments {
		data, mime, ok := decodeDataURI(att.DataURI)
		if !ok {
			// Not an error: attachments without a base64 payload are
			// silently skipped.
			continue
		}
		if att.MediaType != "" {
			mime = att.MediaType
		}
		parts = append(parts, promptPart{Data: data, MIMEType: mime})
	}
	return parts
}

const base64Marker = ";base64,"

// decodeDataURI splits a data:<mime>;base64,<payload> URI into its decoded
// payload and media type. ok is false when the base64 marker is absent or
// the payload does not decode.
func decodeDataURI(uri string) (data []byte, mime string, ok bool) {
	idx := strings.Index(uri, base64Marker)
	if idx < 0 {
		return nil, "", false
	}
	mime = strings.TrimPrefix(uri[:idx], "data:")
	payload := uri[idx+len(base64Marker):]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", false
	}
	if mime == "" {
		mime = "application/octet-stream"
	}
	return data, mime, true
}
