package opencage

import "context"

// IOpenCage searches places through the OpenCage geocoding API.
type IOpenCage interface {
	// Search returns places matching query near location, in provider order.
	// An empty slice with a nil error means the provider found nothing.
	Search(ctx context.Context, location, query string) ([]Place, error)
}

// New creates a new OpenCage client with the given configuration
func New(cfg Config) (IOpenCage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenCageImpl(cfg), nil
}
