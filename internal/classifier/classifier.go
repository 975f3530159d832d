package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"event-planning-assistant/internal/model"
	"event-planning-assistant/pkg/extract"
	"event-planning-assistant/pkg/llmprovider"
	"event-planning-assistant/pkg/metrics"
)

// Classify asks the model for a category and search keywords.
// Any generation or extraction failure is returned as *ClassificationError.
func (c *TaskClassifier) Classify(ctx context.Context, task string, event model.EventContext) (Output, error) {
	prompt := fmt.Sprintf(PromptClassify, task, DescribeEvent(event))

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: ClassifyTemperature,
		MaxTokens:   ClassifyMaxTokens,
		JSONObject:  true,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return Output{}, &ClassificationError{Task: task, Err: err}
	}

	p, err := extract.Extract[payload](resp.Text, classificationShape)
	if err != nil {
		var extractErr *extract.Error
		if errors.As(err, &extractErr) {
			metrics.ExtractionFailures.WithLabelValues(extractErr.Shape, string(extractErr.Stage)).Inc()
			c.l.Warnf(ctx, "%s: %s: %v raw=%q", LogPrefixClassify, ErrMsgExtractFailed, err, extractErr.Raw)
		}
		return Output{}, &ClassificationError{Task: task, Err: err}
	}

	out := Output{
		Category: model.ParseTaskCategory(strings.TrimSpace(p.Category)),
		Keywords: strings.TrimSpace(p.Keywords),
	}
	c.l.Infof(ctx, "%s: Classified %q as %s (keywords: %q)", LogPrefixClassify, task, out.Category, out.Keywords)
	return out, nil
}

// ClassifyOrGeneral never fails: any classification error yields General.
func (c *TaskClassifier) ClassifyOrGeneral(ctx context.Context, task string, event model.EventContext) Output {
	out, err := c.Classify(ctx, task, event)
	if err != nil {
		metrics.ClassificationFallbacks.Inc()
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgFallingBack, err)
		return General
	}
	return out
}

// DescribeEvent renders the event clause shared by the suggestion prompts.
func DescribeEvent(event model.EventContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "an event titled %q", event.Title)
	if d := event.DateText(); d != "" {
		fmt.Fprintf(&sb, " happening on %s", d)
	}
	if event.HasLocation() {
		fmt.Fprintf(&sb, " in %s", strings.TrimSpace(event.Location))
	}
	return sb.String()
}
