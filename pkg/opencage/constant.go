package opencage

import "time"

const (
	DefaultBaseURL = "https://api.opencagedata.com/geocode/v1"
	DefaultLimit   = 5
	DefaultTimeout = 10 * time.Second

	geocodePath = "/json"
)
