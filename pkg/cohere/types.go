package cohere

import (
	"fmt"
	"net/http"
)

// Config holds Cohere client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("cohere: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type cohereImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Request is a single prompt completion request.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response holds the first generation.
type Response struct {
	ID           string
	Text         string
	FinishReason string
}

type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type generateResponse struct {
	ID          string       `json:"id"`
	Generations []generation `json:"generations"`
}

type generation struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}
