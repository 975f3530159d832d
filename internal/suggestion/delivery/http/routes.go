package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Extra handlers (rate limiting) run before each route.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mws ...gin.HandlerFunc) {
	suggestions := rg.Group("/suggestions", mws...)
	{
		suggestions.POST("/tasks", h.SuggestTasks)
		suggestions.POST("/vendors", h.ResolveVendors)
	}
}
