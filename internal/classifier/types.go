package classifier

import "event-planning-assistant/internal/model"

// Output is the routing decision for a task.
type Output struct {
	Category model.TaskCategory
	// Keywords is a place search phrase, empty when the model gave none.
	Keywords string
}

// General is the output used when classification is unavailable.
var General = Output{Category: model.CategoryGeneral}

// payload is what the model is asked to return.
type payload struct {
	Category string `json:"category"`
	Keywords string `json:"keywords"`
}
