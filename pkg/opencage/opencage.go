package opencage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

func newOpenCageImpl(cfg Config) *openCageImpl {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &openCageImpl{
		client:      client,
		apiKey:      cfg.APIKey,
		countryCode: cfg.CountryCode,
		limit:       cfg.Limit,
	}
}

// Search queries the geocode endpoint. The location is appended to the query
// so results are biased toward the event's city.
func (o *openCageImpl) Search(ctx context.Context, location, query string) ([]Place, error) {
	q := buildQuery(location, query)
	if q == "" {
		return nil, fmt.Errorf("opencage: query is required")
	}

	params := map[string]string{
		"q":              q,
		"key":            o.apiKey,
		"limit":          strconv.Itoa(o.limit),
		"no_annotations": "1",
	}
	if o.countryCode != "" {
		params["countrycode"] = o.countryCode
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(geocodePath)
	if err != nil {
		return nil, fmt.Errorf("opencage: request failed: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		msg := gjson.GetBytes(body, "status.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return nil, fmt.Errorf("opencage: API error %d: %s", resp.StatusCode(), msg)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("opencage: invalid response body")
	}

	results := gjson.GetBytes(body, "results")
	if !results.IsArray() {
		return nil, fmt.Errorf("opencage: response has no results array")
	}

	places := make([]Place, 0, len(results.Array()))
	results.ForEach(func(_, r gjson.Result) bool {
		formatted := strings.TrimSpace(r.Get("formatted").String())
		if formatted == "" {
			return true
		}
		places = append(places, Place{
			Formatted: formatted,
			Lat:       r.Get("geometry.lat").Float(),
			Lng:       r.Get("geometry.lng").Float(),
		})
		return len(places) < o.limit
	})

	return places, nil
}

func buildQuery(location, query string) string {
	location = strings.TrimSpace(location)
	query = strings.TrimSpace(query)
	switch {
	case query == "":
		return location
	case location == "":
		return query
	case strings.Contains(strings.ToLower(query), strings.ToLower(location)):
		return query
	default:
		return query + ", " + location
	}
}
