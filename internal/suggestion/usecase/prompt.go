package usecase

import (
	"fmt"
	"strings"

	"event-planning-assistant/internal/classifier"
	"event-planning-assistant/internal/model"
)

const (
	promptTasks = `Suggest 4 to 7 concise, actionable tasks (each 6-8 words, imperative) for %s.%s

Provide the output as a JSON array of strings, where each string is a task. Example: ["Book venue", "Arrange catering"].`

	promptVendors = `Suggest vendors for the task: %q for %s. Provide 5 suggestions with their names, a brief description, and a relevant contact method (e.g., website, phone number, or email). Format the output as a JSON array of objects, where each object has 'name', 'description', and 'contact' fields.`

	tasksTemperature   = 0.7
	vendorsTemperature = 0.4
)

func buildTasksPrompt(event model.EventContext) string {
	var details []string
	if d := strings.TrimSpace(event.Description); d != "" {
		details = append(details, strings.TrimRight(d, ".")+".")
	}
	if event.VenueNeeded {
		details = append(details, "A venue is required.")
	}
	if event.CateringNeeded {
		details = append(details, "Catering is needed.")
	}

	extra := ""
	if len(details) > 0 {
		extra = " " + strings.Join(details, " ")
	}
	return fmt.Sprintf(promptTasks, classifier.DescribeEvent(event), extra)
}

func buildVendorsPrompt(task string, event model.EventContext) string {
	return fmt.Sprintf(promptVendors, task, classifier.DescribeEvent(event))
}
