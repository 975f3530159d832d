package usecase

import (
	"context"
	"strings"
	"time"

	"event-planning-assistant/internal/classifier"
	"event-planning-assistant/internal/model"
	"event-planning-assistant/internal/suggestion"
	"event-planning-assistant/pkg/extract"
	"event-planning-assistant/pkg/llmprovider"
	"event-planning-assistant/pkg/metrics"
)

// ResolveVendors classifies the task, tries place search for booking
// categories and falls back to generated vendors otherwise.
//
// A place search error downgrades the category to general. Zero place
// results keep the booking category but the providers come from generation.
func (uc *implUseCase) ResolveVendors(ctx context.Context, input suggestion.ResolveVendorsInput) (out suggestion.VendorResolution, err error) {
	start := time.Now()
	defer func() { metrics.ObserveSuggestion(metrics.OperationResolveVendors, start, err) }()

	task := strings.TrimSpace(input.TaskTitle)
	if task == "" {
		return suggestion.VendorResolution{}, suggestion.ErrEmptyTaskTitle
	}
	event := input.Event
	if strings.TrimSpace(event.Title) == "" {
		return suggestion.VendorResolution{}, suggestion.ErrEmptyEventTitle
	}

	cls := uc.classify(ctx, task, event)
	category := cls.Category

	if category.IsBooking() {
		providers, searchErr := uc.searchPlaces(ctx, category, cls.Keywords, event)
		if searchErr != nil {
			uc.l.Warnf(ctx, "suggestion.usecase.ResolveVendors: place search for %s failed, downgrading to general: %v", category, searchErr)
			metrics.CategoryDowngrades.WithLabelValues(string(category)).Inc()
			category = model.CategoryGeneral
		} else if len(providers) > 0 {
			return uc.resolved(task, category, model.SourcePlaceSearch, providers), nil
		} else {
			uc.l.Infof(ctx, "suggestion.usecase.ResolveVendors: place search for %s returned no results", category)
		}
	}

	providers, err := uc.generateVendors(ctx, task, event)
	if err != nil {
		return suggestion.VendorResolution{}, err
	}
	return uc.resolved(task, category, model.SourceGeneration, providers), nil
}

func (uc *implUseCase) classify(ctx context.Context, task string, event model.EventContext) classifier.Output {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.GenerationTimeout)
	defer cancel()

	return uc.classifier.ClassifyOrGeneral(ctx, task, event)
}

func (uc *implUseCase) searchPlaces(ctx context.Context, category model.TaskCategory, keywords string, event model.EventContext) ([]model.ProviderCandidate, error) {
	query := strings.TrimSpace(keywords)
	if query == "" {
		query = category.DefaultQuery()
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.PlaceSearchTimeout)
	defer cancel()

	places, err := uc.places.Search(ctx, event.Location, query)
	if err != nil {
		return nil, err
	}

	providers := make([]model.ProviderCandidate, 0, min(len(places), uc.cfg.MaxProviders))
	for _, p := range places {
		if len(providers) == uc.cfg.MaxProviders {
			break
		}
		formatted := strings.TrimSpace(p.Formatted)
		if formatted == "" {
			continue
		}
		providers = append(providers, model.ProviderCandidate{
			Name:    formatted,
			Address: stringPtr(formatted),
		})
	}
	return providers, nil
}

func (uc *implUseCase) generateVendors(ctx context.Context, task string, event model.EventContext) ([]model.ProviderCandidate, error) {
	raw, err := uc.generate(ctx, &llmprovider.Request{
		Prompt:      buildVendorsPrompt(task, event),
		Temperature: vendorsTemperature,
	})
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.ResolveVendors: generate vendors: %v", err)
		return nil, &suggestion.ResolutionError{Task: task, Stage: suggestion.StageGeneration, Err: err}
	}

	vendors, err := extract.Extract[[]vendorPayload](raw, vendorShape)
	if err != nil {
		uc.logExtractionFailure(ctx, "suggestion.usecase.ResolveVendors", err)
		return nil, &suggestion.ResolutionError{Task: task, Stage: suggestion.StageExtraction, Err: err}
	}

	providers := make([]model.ProviderCandidate, 0, len(vendors))
	for _, v := range vendors {
		if len(providers) == uc.cfg.MaxProviders {
			break
		}
		name := strings.TrimSpace(v.Name)
		if name == "" {
			continue
		}
		providers = append(providers, model.ProviderCandidate{
			Name:        name,
			Description: optional(v.Description),
			Contact:     optional(v.Contact),
		})
	}
	return providers, nil
}

func (uc *implUseCase) resolved(task string, category model.TaskCategory, source model.ProviderSource, providers []model.ProviderCandidate) suggestion.VendorResolution {
	metrics.VendorResolutions.WithLabelValues(string(category), string(source)).Inc()
	return suggestion.VendorResolution{
		Task:      task,
		Category:  category,
		Source:    source,
		Providers: providers,
	}
}
