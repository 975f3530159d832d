package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Classifier prompts
const (
	PromptClassify = `Analyze the following task and determine its category. If it's related to booking a venue or catering, categorize it as 'venue_booking' or 'catering_booking' respectively. Otherwise, categorize it as 'general'. Also, extract any relevant keywords for searching (e.g., "event venue", "catering service").
Task: "%s" for %s.

Provide the output as a JSON object with 'category' (string) and 'keywords' (string, comma-separated, optional) fields. If no specific keywords are found, leave 'keywords' empty.`
)

// Classifier configuration
const (
	ClassifyTemperature = 0.1
	ClassifyMaxTokens   = 256
)

// Error messages
const (
	ErrMsgLLMCallFailed = "LLM call failed"
	ErrMsgExtractFailed = "Failed to extract classification"
	ErrMsgFallingBack   = "classification failed, treating task as general"
)
