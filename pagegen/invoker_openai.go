package pagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type openAIInvoker struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func newOpenAIInvoker(cfg Config, model string, logger *zap.Logger) (modelInvoker, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("pagegen: OpenAI API key is required to use ProviderOpenAI")
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}
	return &openAIInvoker{
		client: openai.NewClientWithConfig(oc),
		model:  model,
		logger: logger.Named("openai"),
	}, nil
}

func (p *openAIInvoker) invoke(ctx context.Context, parts []promptPart, allowVariants bool) (invokeResult, error) {
	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	for _, part := range parts {
		if part.Data != nil {
			msg.MultiContent = append(msg.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: encodeDataURI(part.Data, part.MIMEType),
				},
			})
			continue
		}
		msg.MultiContent = append(msg.MultiContent, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: part.Text,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:    p.model,
		Messages: []openai.ChatCompletionMessage{msg},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	if allowVariants {
		req.Tools = []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        variantToolName,
				Description: variantToolDescription,
				Parameters:  variantToolSchema(),
			},
		}}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return invokeResult{}, err
	}
	if len(resp.Choices) == 0 {
		return invokeResult{}, errors.New("pagegen: no choices in response")
	}
	choice := resp.Choices[0]

	out := invokeResult{}
	for _, tc := range choice.Message.ToolCalls {
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return invokeResult{}, fmt.Errorf("pagegen: invalid tool call args for %s: %w", tc.Function.Name, err)
		}
		out.Calls = append(out.Calls, toolCall{Name: tc.Function.Name, Args: args})
	}
	if len(out.Calls) > 0 {
		return out, nil
	}

	p.logger.Debug("generation usage",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	out.Text = choice.Message.Content
	return out, nil
}

// encodeDataURI re-wraps decoded attachment bytes as the data URI shape the
// chat completions image part expects.
func encodeDataURI(data []byte, mime string) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
