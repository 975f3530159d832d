package opencage

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config holds OpenCage client configuration
type Config struct {
	APIKey  string
	BaseURL string
	// CountryCode restricts results to a comma separated list of ISO 3166-1 alpha-2 codes.
	CountryCode string
	Limit       int
	Timeout     time.Duration
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("opencage: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Place is a single geocoding result.
type Place struct {
	Formatted string
	Lat       float64
	Lng       float64
}

type openCageImpl struct {
	client      *resty.Client
	apiKey      string
	countryCode string
	limit       int
}
