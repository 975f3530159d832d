package model

// TaskCategory is the routing decision for a task.
type TaskCategory string

const (
	CategoryVenueBooking    TaskCategory = "venue_booking"
	CategoryCateringBooking TaskCategory = "catering_booking"
	CategoryGeneral         TaskCategory = "general"
)

// ParseTaskCategory maps free model text to a known category. Anything
// unrecognized is general.
func ParseTaskCategory(s string) TaskCategory {
	switch TaskCategory(s) {
	case CategoryVenueBooking, CategoryCateringBooking:
		return TaskCategory(s)
	default:
		return CategoryGeneral
	}
}

// IsBooking reports whether the category is served by place search.
func (c TaskCategory) IsBooking() bool {
	return c == CategoryVenueBooking || c == CategoryCateringBooking
}

// DefaultQuery is the place search phrase used when no keywords were extracted.
func (c TaskCategory) DefaultQuery() string {
	switch c {
	case CategoryVenueBooking:
		return "event venue"
	case CategoryCateringBooking:
		return "catering service"
	default:
		return ""
	}
}

// ProviderSource names the backend that produced a provider list.
type ProviderSource string

const (
	SourcePlaceSearch ProviderSource = "place_search"
	SourceGeneration  ProviderSource = "generation"
)

// ProviderCandidate is a suggested vendor. Absent fields are nil and omitted
// when serialized.
type ProviderCandidate struct {
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	BookingLink *string `json:"booking_link,omitempty"`
	Description *string `json:"description,omitempty"`
	Contact     *string `json:"contact,omitempty"`
}
