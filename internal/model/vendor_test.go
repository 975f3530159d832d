package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskCategory(t *testing.T) {
	tests := map[string]TaskCategory{
		"venue_booking":    CategoryVenueBooking,
		"catering_booking": CategoryCateringBooking,
		"general":          CategoryGeneral,
		"photography":      CategoryGeneral,
		"Venue_Booking":    CategoryGeneral,
		"":                 CategoryGeneral,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseTaskCategory(in), in)
	}
}

func TestTaskCategory_DefaultQuery(t *testing.T) {
	assert.Equal(t, "event venue", CategoryVenueBooking.DefaultQuery())
	assert.Equal(t, "catering service", CategoryCateringBooking.DefaultQuery())
	assert.Empty(t, CategoryGeneral.DefaultQuery())
	assert.False(t, CategoryGeneral.IsBooking())
}

func TestProviderCandidate_OmitsAbsentFields(t *testing.T) {
	addr := "Avari Hotel, Lahore"
	raw, err := json.Marshal(ProviderCandidate{Name: addr, Address: &addr})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name": "Avari Hotel, Lahore", "address": "Avari Hotel, Lahore"}`, string(raw))
}

func TestEventContext_DateText(t *testing.T) {
	assert.Empty(t, EventContext{}.DateText())

	d := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Fri Mar 14 2025", EventContext{Date: &d}.DateText())
}
