package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed), doc)

	assert.Equal(t, "Event Planning Assistant API", parsed.Info.Title)
	for _, path := range []string{"/api/v1/suggestions/tasks", "/api/v1/suggestions/vendors", "/health", "/ready", "/live"} {
		assert.Contains(t, parsed.Paths, path)
	}
}
