package models

// Itinerary is the normalized internal representation of a trip. After
// mapping, every field holds a render-safe value; optional sub-structures
// are nil only where the document truly has no data for them (Group).
type Itinerary struct {
	TripName    string   `json:"trip_name"`
	Traveler    string   `json:"traveler_name"`
	Destination string   `json:"destination"`
	City        string   `json:"city,omitempty"`
	Duration    string   `json:"duration"`
	Dates       string   `json:"dates"`
	CoverImage  string   `json:"cover_image"`
	TripType    string   `json:"trip_type,omitempty"` // "group" or empty
	Group       *Group   `json:"group,omitempty"`
	Days        []Day    `json:"days"`
	Notes       []string `json:"notes"`
}

// HasParticipants reports whether the itinerary carries a participants page.
func (it Itinerary) HasParticipants() bool {
	return it.Group != nil && len(it.Group.Participants) > 0
}

// Group holds group-trip metadata. Only constructed when the raw document
// supplies a non-empty participant list.
type Group struct {
	Participants       []Participant `json:"participants"`
	CollectPreferences bool          `json:"collect_preferences"`
}

type Participant struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Day is one travel day. DayNumber is the 1-based position assigned during
// mapping; backend-provided numbering is ignored.
type Day struct {
	DayNumber  int        `json:"day_number"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity is one scheduled item within a day. DistanceToNext is the
// distance in kilometers to the next activity of the same day; nil means
// "not computed" and suppresses any distance indicator.
type Activity struct {
	Time           string   `json:"time"`
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Image          string   `json:"image"`
	DistanceToNext *float64 `json:"distance_to_next,omitempty"`
}
