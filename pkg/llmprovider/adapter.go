package llmprovider

import (
	"context"

	"event-planning-assistant/pkg/cohere"
	"event-planning-assistant/pkg/deepseek"
	"event-planning-assistant/pkg/gemini"
)

const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
	ProviderCohere   = "cohere"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.wantsJSON(),
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string { return ProviderGemini }

// Model returns model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var messages []deepseek.Message
	if req.SystemInstruction != "" {
		messages = append(messages, deepseek.Message{Role: deepseek.RoleSystem, Content: req.SystemInstruction})
	}
	messages = append(messages, deepseek.Message{Role: deepseek.RoleUser, Content: req.Prompt})

	// response_format json_object rejects arrays, so plain JSONMode stays in text mode.
	dsReq := &deepseek.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONObject {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: deepseek.ResponseFormatJSON}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: ProviderDeepSeek,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string { return ProviderDeepSeek }

// Model returns model name
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

// CohereAdapter adapts pkg/cohere to llmprovider.Provider interface
type CohereAdapter struct {
	client cohere.ICohere
}

// NewCohereAdapter creates a new Cohere adapter
func NewCohereAdapter(client cohere.ICohere) *CohereAdapter {
	return &CohereAdapter{client: client}
}

// GenerateContent implements Provider interface. The generate endpoint has no
// system role, so the instruction is prepended to the prompt.
func (a *CohereAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	prompt := req.Prompt
	if req.SystemInstruction != "" {
		prompt = req.SystemInstruction + "\n\n" + prompt
	}

	resp, err := a.client.Generate(ctx, &cohere.Request{
		Prompt:      prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderCohere,
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *CohereAdapter) Name() string { return ProviderCohere }

// Model returns model name
func (a *CohereAdapter) Model() string { return a.client.Model() }
