package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"event-planning-assistant/internal/model"
	"event-planning-assistant/internal/suggestion"
	"event-planning-assistant/pkg/extract"
	"event-planning-assistant/pkg/llmprovider"
	"event-planning-assistant/pkg/metrics"
)

// SuggestTasks asks the model for a JSON array of task strings and normalizes
// each element: trimmed, empty ones dropped, order kept.
func (uc *implUseCase) SuggestTasks(ctx context.Context, input suggestion.SuggestTasksInput) (out suggestion.SuggestTasksOutput, err error) {
	start := time.Now()
	defer func() { metrics.ObserveSuggestion(metrics.OperationSuggestTasks, start, err) }()

	event := input.Event
	if strings.TrimSpace(event.Title) == "" {
		return suggestion.SuggestTasksOutput{}, suggestion.ErrEmptyEventTitle
	}

	raw, err := uc.generate(ctx, &llmprovider.Request{
		Prompt:      buildTasksPrompt(event),
		Temperature: tasksTemperature,
		JSONMode:    true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.SuggestTasks: generate: %v", err)
		return suggestion.SuggestTasksOutput{}, &suggestion.SuggestionError{Event: event.Title, Stage: suggestion.StageGeneration, Err: err}
	}

	items, err := extract.Extract[[]string](raw, extract.StringArray)
	if err != nil {
		uc.logExtractionFailure(ctx, "suggestion.usecase.SuggestTasks", err)
		return suggestion.SuggestTasksOutput{}, &suggestion.SuggestionError{Event: event.Title, Stage: suggestion.StageExtraction, Err: err}
	}

	return suggestion.SuggestTasksOutput{Suggestions: normalizeTasks(items)}, nil
}

func normalizeTasks(items []string) []model.TaskSuggestion {
	out := make([]model.TaskSuggestion, 0, len(items))
	for _, item := range items {
		if text := strings.TrimSpace(item); text != "" {
			out = append(out, model.TaskSuggestion{Text: text})
		}
	}
	return out
}

// generate runs one generation call under its own timeout.
func (uc *implUseCase) generate(ctx context.Context, req *llmprovider.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.GenerationTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// logExtractionFailure keeps the raw model output server side only.
func (uc *implUseCase) logExtractionFailure(ctx context.Context, prefix string, err error) {
	var extractErr *extract.Error
	if errors.As(err, &extractErr) {
		metrics.ExtractionFailures.WithLabelValues(extractErr.Shape, string(extractErr.Stage)).Inc()
		uc.l.Errorf(ctx, "%s: %v raw=%q", prefix, err, extractErr.Raw)
		return
	}
	uc.l.Errorf(ctx, "%s: %v", prefix, err)
}
