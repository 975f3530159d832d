package suggestion

import "event-planning-assistant/internal/model"

// --- UseCase Inputs ---

type SuggestTasksInput struct {
	Event model.EventContext
}

type ResolveVendorsInput struct {
	TaskTitle string
	Event     model.EventContext
}

// --- UseCase Outputs ---

type SuggestTasksOutput struct {
	Suggestions []model.TaskSuggestion
}

// Texts returns the suggestion strings in order.
func (o SuggestTasksOutput) Texts() []string {
	out := make([]string, len(o.Suggestions))
	for i, s := range o.Suggestions {
		out[i] = s.Text
	}
	return out
}

// VendorResolution is the result of resolving vendors for one task.
// Every provider comes from Source; lists from different backends are never merged.
type VendorResolution struct {
	Task      string
	Category  model.TaskCategory
	Source    model.ProviderSource
	Providers []model.ProviderCandidate
}
