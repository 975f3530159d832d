package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "cohere")
	Name() string

	// Model returns the model being used
	Model() string
}

// Generator is what callers of the generation leaf depend on. *Manager implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Request represents a normalized single-turn text generation request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
	// JSONMode hints providers that support it to answer with a JSON document.
	// Callers still parse the text themselves.
	JSONMode bool
	// JSONObject narrows JSONMode to a single top-level object, which is the
	// only JSON shape OpenAI-compatible providers can enforce. It implies JSONMode.
	JSONObject bool
}

// wantsJSON reports whether any JSON hint is set.
func (r *Request) wantsJSON() bool {
	return r.JSONMode || r.JSONObject
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
