package http

import (
	"strings"
	"time"

	"event-planning-assistant/internal/model"
	"event-planning-assistant/internal/suggestion"
)

// --- Request DTOs ---

type eventReq struct {
	Title          string     `json:"title"           binding:"required,max=255"`
	Description    string     `json:"description"     binding:"max=2000"`
	Location       string     `json:"location"        binding:"max=255"`
	VenueNeeded    bool       `json:"venue_needed"`
	CateringNeeded bool       `json:"catering_needed"`
	Date           *time.Time `json:"date,omitempty"`
}

func (r eventReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return suggestion.ErrEmptyEventTitle
	}
	return nil
}

func (r eventReq) toModel() model.EventContext {
	return model.EventContext{
		Title:          strings.TrimSpace(r.Title),
		Description:    strings.TrimSpace(r.Description),
		Location:       strings.TrimSpace(r.Location),
		VenueNeeded:    r.VenueNeeded,
		CateringNeeded: r.CateringNeeded,
		Date:           r.Date,
	}
}

// ---

type suggestTasksReq struct {
	Event eventReq `json:"event"`
}

func (r suggestTasksReq) validate() error { return r.Event.validate() }

func (r suggestTasksReq) toInput() suggestion.SuggestTasksInput {
	return suggestion.SuggestTasksInput{Event: r.Event.toModel()}
}

// ---

type resolveVendorsReq struct {
	TaskTitle string   `json:"task_title" binding:"required,max=255"`
	Event     eventReq `json:"event"`
}

func (r resolveVendorsReq) validate() error {
	if strings.TrimSpace(r.TaskTitle) == "" {
		return suggestion.ErrEmptyTaskTitle
	}
	return r.Event.validate()
}

func (r resolveVendorsReq) toInput() suggestion.ResolveVendorsInput {
	return suggestion.ResolveVendorsInput{
		TaskTitle: strings.TrimSpace(r.TaskTitle),
		Event:     r.Event.toModel(),
	}
}

// --- Response DTOs ---

type suggestTasksResp struct {
	Suggestions []string `json:"suggestions"`
}

func (h *handler) newSuggestTasksResp(out suggestion.SuggestTasksOutput) suggestTasksResp {
	return suggestTasksResp{Suggestions: out.Texts()}
}

type providerResp struct {
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	BookingLink *string `json:"booking_link,omitempty"`
	Description *string `json:"description,omitempty"`
	Contact     *string `json:"contact,omitempty"`
}

type resolveVendorsResp struct {
	Task               string         `json:"task"`
	Category           string         `json:"category"`
	Source             string         `json:"source"`
	SuggestedProviders []providerResp `json:"suggested_providers"`
}

func (h *handler) newResolveVendorsResp(out suggestion.VendorResolution) resolveVendorsResp {
	providers := make([]providerResp, len(out.Providers))
	for i, p := range out.Providers {
		providers[i] = providerResp(p)
	}
	return resolveVendorsResp{
		Task:               out.Task,
		Category:           string(out.Category),
		Source:             string(out.Source),
		SuggestedProviders: providers,
	}
}
