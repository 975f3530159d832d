package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-planning-assistant/config"
	"event-planning-assistant/internal/middleware"
	"event-planning-assistant/internal/model"
	"event-planning-assistant/internal/suggestion"
	"event-planning-assistant/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) SuggestTasks(ctx context.Context, input suggestion.SuggestTasksInput) (suggestion.SuggestTasksOutput, error) {
	return suggestion.SuggestTasksOutput{Suggestions: []model.TaskSuggestion{{Text: "Book venue"}}}, nil
}

func (stubUseCase) ResolveVendors(ctx context.Context, input suggestion.ResolveVendorsInput) (suggestion.VendorResolution, error) {
	return suggestion.VendorResolution{Task: input.TaskTitle, Category: model.CategoryGeneral, Source: model.SourceGeneration}, nil
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:              8080,
		Mode:              gin.TestMode,
		Environment:       "test",
		Middleware:        middleware.New(l, config.CORSConfig{}, config.RateLimitConfig{}),
		SuggestionUseCase: stubUseCase{},
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err, "suggestion use case is required")

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, SuggestionUseCase: stubUseCase{}})
	assert.Error(t, err, "port is required")
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{method: http.MethodGet, path: "/health", want: http.StatusOK},
		{method: http.MethodGet, path: "/ready", want: http.StatusOK},
		{method: http.MethodGet, path: "/live", want: http.StatusOK},
		{method: http.MethodGet, path: "/metrics", want: http.StatusOK},
		{method: http.MethodPost, path: "/api/v1/suggestions/tasks", body: `{"event": {"title": "Product Launch"}}`, want: http.StatusOK},
		{method: http.MethodPost, path: "/api/v1/suggestions/vendors", body: `{"task_title": "Hire DJ", "event": {"title": "Product Launch"}}`, want: http.StatusOK},
		{method: http.MethodGet, path: "/api/v1/suggestions/tasks", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestNew_InvalidTrustedProxy(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{
		Port:              8080,
		Mode:              gin.TestMode,
		TrustedProxies:    []string{"not-an-ip"},
		Middleware:        middleware.New(l, config.CORSConfig{}, config.RateLimitConfig{}),
		SuggestionUseCase: stubUseCase{},
	})
	assert.Error(t, err)
}

func TestRateLimit_ForwardedForNotTrustedByDefault(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:              8080,
		Mode:              gin.TestMode,
		Middleware:        middleware.New(l, config.CORSConfig{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10}),
		SuggestionUseCase: stubUseCase{},
	})
	require.NoError(t, err)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions/tasks", strings.NewReader(`{"event": {"title": "Product Launch"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.%d.1", i))
		req.RemoteAddr = "203.0.113.7:5555"
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}
