package opencage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		location string
		query    string
		want     string
	}{
		{name: "both", location: "Lahore", query: "banquet hall", want: "banquet hall, Lahore"},
		{name: "query already names location", location: "Lahore", query: "banquet hall lahore", want: "banquet hall lahore"},
		{name: "no location", location: " ", query: "event venue", want: "event venue"},
		{name: "no query", location: "Lahore", query: "", want: "Lahore"},
		{name: "neither", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildQuery(tt.location, tt.query))
		})
	}
}

func TestSearch(t *testing.T) {
	var lastQuery url.Values

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.Query()
		if r.URL.Path != "/json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch lastQuery.Get("q") {
		case "nothing, Lahore":
			w.Write([]byte(`{"results": [], "status": {"code": 200, "message": "OK"}}`))
		case "quota, Lahore":
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"results": [], "status": {"code": 402, "message": "quota exceeded"}}`))
		default:
			w.Write([]byte(`{
				"results": [
					{"formatted": "Pearl Continental, Lahore, Pakistan", "geometry": {"lat": 31.55, "lng": 74.33}},
					{"formatted": ""},
					{"formatted": "Avari Hotel, Lahore, Pakistan", "geometry": {"lat": 31.56, "lng": 74.32}},
					{"formatted": "Faletti's Hotel, Lahore, Pakistan"}
				],
				"status": {"code": 200, "message": "OK"}
			}`))
		}
	}))
	defer ts.Close()

	client, err := New(Config{APIKey: "key", BaseURL: ts.URL, CountryCode: "pk", Limit: 2})
	require.NoError(t, err)

	t.Run("maps formatted results in order up to limit", func(t *testing.T) {
		places, err := client.Search(context.Background(), "Lahore", "banquet hall")

		require.NoError(t, err)
		require.Len(t, places, 2)
		assert.Equal(t, "Pearl Continental, Lahore, Pakistan", places[0].Formatted)
		assert.Equal(t, "Avari Hotel, Lahore, Pakistan", places[1].Formatted)
		assert.InDelta(t, 31.55, places[0].Lat, 0.0001)

		assert.Equal(t, "banquet hall, Lahore", lastQuery.Get("q"))
		assert.Equal(t, "key", lastQuery.Get("key"))
		assert.Equal(t, "2", lastQuery.Get("limit"))
		assert.Equal(t, "1", lastQuery.Get("no_annotations"))
		assert.Equal(t, "pk", lastQuery.Get("countrycode"))
	})

	t.Run("empty results", func(t *testing.T) {
		places, err := client.Search(context.Background(), "Lahore", "nothing")

		require.NoError(t, err)
		assert.Empty(t, places)
	})

	t.Run("api error", func(t *testing.T) {
		_, err := client.Search(context.Background(), "Lahore", "quota")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("blank query", func(t *testing.T) {
		_, err := client.Search(context.Background(), "", " ")
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{APIKey: "k"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultLimit, cfg.Limit)

	assert.Error(t, (&Config{}).Validate())
}
