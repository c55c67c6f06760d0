package response_models

// ItineraryResponse is the generated multi-day itinerary. Day entries are
// keyed "day_1".."day_N" with 1-based day numbers inside; the merge engine
// converts those to the zero-based day key space.
type ItineraryResponse struct {
	Success          bool                    `json:"success"`
	Municipality     string                  `json:"municipality"`
	Preferences      []string                `json:"preferences"`
	Days             int                     `json:"days"`
	Budget           int                     `json:"budget"`
	AIRecommendation string                  `json:"ai_recommendation,omitempty"`
	Itinerary        map[string]ItineraryDay `json:"itinerary"`
	TotalPlaces      int                     `json:"total_places"`
}

type ItineraryDay struct {
	Day          int              `json:"day"`
	Municipality string           `json:"municipality"`
	Places       []ItineraryPlace `json:"places"`
	Activities   []string         `json:"activities"`
}

type ItineraryPlace struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Category    string  `json:"category,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Coordinates *LatLng `json:"coordinates,omitempty"`
}
