package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-planning-assistant/internal/model"
	"event-planning-assistant/internal/suggestion"
	"event-planning-assistant/pkg/extract"
	"event-planning-assistant/pkg/log"
	"event-planning-assistant/pkg/response"
)

type fakeUseCase struct {
	tasksOut   suggestion.SuggestTasksOutput
	vendorsOut suggestion.VendorResolution
	err        error

	tasksIn   suggestion.SuggestTasksInput
	vendorsIn suggestion.ResolveVendorsInput
	calls     int
}

func (f *fakeUseCase) SuggestTasks(ctx context.Context, input suggestion.SuggestTasksInput) (suggestion.SuggestTasksOutput, error) {
	f.calls++
	f.tasksIn = input
	return f.tasksOut, f.err
}

func (f *fakeUseCase) ResolveVendors(ctx context.Context, input suggestion.ResolveVendorsInput) (suggestion.VendorResolution, error) {
	f.calls++
	f.vendorsIn = input
	return f.vendorsOut, f.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func serve(t *testing.T, uc suggestion.UseCase, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

const launchEvent = `{"title": "Product Launch", "description": "New phone", "location": "Lahore", "venue_needed": true, "catering_needed": false}`

func TestSuggestTasksHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &fakeUseCase{tasksOut: suggestion.SuggestTasksOutput{Suggestions: []model.TaskSuggestion{
			{Text: "Book venue in Lahore"}, {Text: "Send press invitations"},
		}}}

		w, env := serve(t, uc, "/api/v1/suggestions/tasks", `{"event": `+launchEvent+`}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"suggestions": ["Book venue in Lahore", "Send press invitations"]}`, string(env.Data))
		assert.Equal(t, "Lahore", uc.tasksIn.Event.Location)
		assert.True(t, uc.tasksIn.Event.VenueNeeded)
	})

	t.Run("missing title", func(t *testing.T) {
		uc := &fakeUseCase{}

		w, env := serve(t, uc, "/api/v1/suggestions/tasks", `{"event": {"location": "Lahore"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", env.Code)
		assert.Zero(t, uc.calls)
	})

	t.Run("blank title", func(t *testing.T) {
		w, env := serve(t, &fakeUseCase{}, "/api/v1/suggestions/tasks", `{"event": {"title": "   "}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", env.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		w, _ := serve(t, &fakeUseCase{}, "/api/v1/suggestions/tasks", `{"event":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("suggestion failure hides raw output", func(t *testing.T) {
		raw := "Sure! Here are some tasks: book a venue"
		uc := &fakeUseCase{err: &suggestion.SuggestionError{
			Event: "Product Launch",
			Stage: suggestion.StageExtraction,
			Err:   &extract.Error{Stage: extract.StageParse, Shape: "string_array", Raw: raw, Err: errors.New("invalid character")},
		}}

		w, env := serve(t, uc, "/api/v1/suggestions/tasks", `{"event": `+launchEvent+`}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "SUGGESTION_FAILED", env.Code)
		assert.NotContains(t, w.Body.String(), raw)
	})
}

func TestResolveVendorsHandler(t *testing.T) {
	t.Run("place search result", func(t *testing.T) {
		addr := "Avari Hotel, Lahore, Pakistan"
		uc := &fakeUseCase{vendorsOut: suggestion.VendorResolution{
			Task:      "Book a venue for 200 guests",
			Category:  model.CategoryVenueBooking,
			Source:    model.SourcePlaceSearch,
			Providers: []model.ProviderCandidate{{Name: addr, Address: &addr}},
		}}

		w, env := serve(t, uc, "/api/v1/suggestions/vendors",
			`{"task_title": "Book a venue for 200 guests", "event": `+launchEvent+`}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"task": "Book a venue for 200 guests",
			"category": "venue_booking",
			"source": "place_search",
			"suggested_providers": [{"name": "Avari Hotel, Lahore, Pakistan", "address": "Avari Hotel, Lahore, Pakistan"}]
		}`, string(env.Data))
		assert.Equal(t, "Book a venue for 200 guests", uc.vendorsIn.TaskTitle)
	})

	t.Run("empty providers serialize as array", func(t *testing.T) {
		uc := &fakeUseCase{vendorsOut: suggestion.VendorResolution{
			Task: "Hire DJ", Category: model.CategoryGeneral, Source: model.SourceGeneration,
		}}

		_, env := serve(t, uc, "/api/v1/suggestions/vendors", `{"task_title": "Hire DJ", "event": `+launchEvent+`}`)

		assert.Contains(t, string(env.Data), `"suggested_providers":[]`)
	})

	t.Run("missing task title", func(t *testing.T) {
		uc := &fakeUseCase{}

		w, env := serve(t, uc, "/api/v1/suggestions/vendors", `{"event": `+launchEvent+`}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", env.Code)
		assert.Zero(t, uc.calls)
	})

	t.Run("resolution failure", func(t *testing.T) {
		uc := &fakeUseCase{err: &suggestion.ResolutionError{Task: "Hire DJ", Stage: suggestion.StageExtraction, Err: errors.New("bad payload")}}

		w, env := serve(t, uc, "/api/v1/suggestions/vendors", `{"task_title": "Hire DJ", "event": `+launchEvent+`}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "VENDOR_RESOLUTION_FAILED", env.Code)
		assert.NotContains(t, env.Message, "bad payload")
	})

	t.Run("unexpected error", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("boom")}

		w, env := serve(t, uc, "/api/v1/suggestions/vendors", `{"task_title": "Hire DJ", "event": `+launchEvent+`}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Code)
		assert.Equal(t, response.DefaultErrorMessage, env.Message)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}
