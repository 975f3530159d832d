package cohere

import "time"

const (
	DefaultModel     = "command-r-plus"
	DefaultBaseURL   = "https://api.cohere.ai/v1"
	DefaultMaxTokens = 300
	DefaultTimeout   = 30 * time.Second
)
