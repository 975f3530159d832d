package cohere

import "context"

// ICohere is a client for the Cohere generate endpoint.
type ICohere interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a new Cohere client with the given configuration
func New(cfg Config) (ICohere, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cohereImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
