package gemini

import "context"

// IGemini is a single-turn text client for the generateContent endpoint.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends one prompt and returns the joined candidate text.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

// New validates cfg, fills defaults and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
