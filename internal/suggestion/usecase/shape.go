package usecase

import "event-planning-assistant/pkg/extract"

// vendorShape is an array of vendors; only name is required.
var vendorShape = extract.MustShape("vendor_array", `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"},
			"description": {"type": "string"},
			"contact": {"type": "string"}
		}
	}
}`)

type vendorPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Contact     *string `json:"contact"`
}
