package http

import (
	"github.com/gin-gonic/gin"

	"event-planning-assistant/internal/suggestion"
	"event-planning-assistant/pkg/log"
)

// Handler is the public interface for the suggestion HTTP delivery layer.
type Handler interface {
	SuggestTasks(c *gin.Context)
	ResolveVendors(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for the suggestion domain.
func New(l log.Logger, uc suggestion.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
