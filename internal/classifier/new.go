package classifier

import (
	"context"

	"event-planning-assistant/internal/model"
	"event-planning-assistant/pkg/extract"
	"event-planning-assistant/pkg/llmprovider"
	"event-planning-assistant/pkg/log"
)

// Classifier decides which backend should serve a task's vendor suggestions.
type Classifier interface {
	Classify(ctx context.Context, task string, event model.EventContext) (Output, error)
	ClassifyOrGeneral(ctx context.Context, task string, event model.EventContext) Output
}

// classificationShape only requires category; keywords is optional.
var classificationShape = extract.MustShape("classification", `{
	"type": "object",
	"required": ["category"],
	"properties": {
		"category": {"type": "string"},
		"keywords": {"type": "string"}
	}
}`)

// TaskClassifier classifies tasks with a text generation model
type TaskClassifier struct {
	llm llmprovider.Generator
	l   log.Logger
}

var _ Classifier = (*TaskClassifier)(nil)

// New creates a new TaskClassifier
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm llmprovider.Generator, l log.Logger) *TaskClassifier {
	return &TaskClassifier{
		llm: llm,
		l:   l,
	}
}
