package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Generate sends the prompt to the generate endpoint and returns the first generation.
func (c *cohereImpl) Generate(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("cohere: prompt is required")
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	body, err := json.Marshal(generateRequest{
		Model:       c.model,
		Prompt:      req.Prompt,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("cohere: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cohere: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("cohere: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cohere: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("cohere: API error %d: %s", resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("cohere: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("cohere: failed to parse response: %w", err)
	}
	if len(result.Generations) == 0 {
		return nil, fmt.Errorf("cohere: response has no generations")
	}

	first := result.Generations[0]
	return &Response{
		ID:           result.ID,
		Text:         first.Text,
		FinishReason: first.FinishReason,
	}, nil
}

// Model returns the configured model
func (c *cohereImpl) Model() string {
	return c.model
}
