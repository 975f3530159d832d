package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	suggestionHTTP "event-planning-assistant/internal/suggestion/delivery/http"
)

// setupSuggestionDomain registers the suggestion routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in cmd/api and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw.RateLimit())
func (srv HTTPServer) setupSuggestionDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := suggestionHTTP.New(srv.l, srv.suggestionUC)

	// Routes: /api/v1/suggestions/tasks, /api/v1/suggestions/vendors
	suggestionHTTP.RegisterRoutes(api, h, srv.mw.RateLimit())

	srv.l.Infof(ctx, "Suggestion domain registered")
	return nil
}
