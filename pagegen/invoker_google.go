package pagegen

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type googleInvoker struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func newGoogleInvoker(cfg Config, model string, logger *zap.Logger) (modelInvoker, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("pagegen: Google API key is required to use ProviderGoogle")
	}
	httpOpts := genai.HTTPOptions{BaseURL: cfg.BaseURL}
	if cfg.Timeout > 0 {
		timeout := cfg.Timeout
		httpOpts.Timeout = &timeout
	}
	gc, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: httpOpts,
		// Backend: default Gemini Developer API.
	})
	if err != nil {
		return nil, err
	}
	return &googleInvoker{client: gc, model: model, logger: logger.Named("google")}, nil
}

func (p *googleInvoker) invoke(ctx context.Context, parts []promptPart, allowVariants bool) (invokeResult, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if allowVariants {
		cfg.Tools = []*genai.Tool{{
			FunctionDeclarations: []*genai.FunctionDeclaration{{
				Name:                 variantToolName,
				Description:          variantToolDescription,
				ParametersJsonSchema: variantToolSchema(),
			}},
		}}
	}

	content := &genai.Content{Role: "user"}
	for _, part := range parts {
		if part.Data != nil {
			content.Parts = append(content.Parts, &genai.Part{
				InlineData: &genai.Blob{MIMEType: part.MIMEType, Data: part.Data},
			})
			continue
		}
		content.Parts = append(content.Parts, &genai.Part{Text: part.Text})
	}

	res, err := p.client.Models.GenerateContent(ctx, p.model, []*genai.Content{content}, cfg)
	if err != nil {
		return invokeResult{}, err
	}

	out := invokeResult{}
	for _, fc := range res.FunctionCalls() {
		out.Calls = append(out.Calls, toolCall{Name: fc.Name, Args: fc.Args})
	}
	if len(out.Calls) > 0 {
		return out, nil
	}

	if res.UsageMetadata != nil {
		p.logger.Debug("generation usage",
			zap.Int32("prompt_tokens", res.UsageMetadata.PromptTokenCount),
			zap.Int32("completion_tokens", res.UsageMetadata.CandidatesTokenCount),
			zap.Int32("total_tokens", res.UsageMetadata.TotalTokenCount),
		)
	}

	out.Text = textFromGenAI(res)
	return out, nil
}

// textFromGenAI concatenates the first candidate's text parts, newline
// separated when the model split them.
func textFromGenAI(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, p := range res.Candidates[0].Content.Parts {
		if p.Text == "" {
			continue
		}
		if text == "" {
			text = p.Text
		} else {
			text += "\n" + p.Text
		}
	}
	return text
}
