package usecase

import (
	"time"

	"event-planning-assistant/internal/classifier"
	"event-planning-assistant/internal/suggestion"
	"event-planning-assistant/pkg/llmprovider"
	"event-planning-assistant/pkg/log"
	"event-planning-assistant/pkg/opencage"
)

const (
	defaultGenerationTimeout  = 30 * time.Second
	defaultPlaceSearchTimeout = 10 * time.Second
	defaultMaxProviders       = 5
)

// Config bounds the outbound calls of one suggestion operation.
type Config struct {
	GenerationTimeout  time.Duration
	PlaceSearchTimeout time.Duration
	MaxProviders       int
}

// implUseCase is the private implementation of suggestion.UseCase.
type implUseCase struct {
	l          log.Logger
	llm        llmprovider.Generator
	classifier classifier.Classifier
	places     opencage.IOpenCage
	cfg        Config
}

var _ suggestion.UseCase = (*implUseCase)(nil)

// New creates a new suggestion UseCase implementation.
func New(l log.Logger, llm llmprovider.Generator, cls classifier.Classifier, places opencage.IOpenCage, cfg Config) *implUseCase {
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = defaultGenerationTimeout
	}
	if cfg.PlaceSearchTimeout <= 0 {
		cfg.PlaceSearchTimeout = defaultPlaceSearchTimeout
	}
	if cfg.MaxProviders <= 0 {
		cfg.MaxProviders = defaultMaxProviders
	}
	return &implUseCase{
		l:          l,
		llm:        llm,
		classifier: cls,
		places:     places,
		cfg:        cfg,
	}
}
