package response_models

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlaceInfo struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Type        string  `json:"type"`
	Coordinates *LatLng `json:"coordinates,omitempty"`
}

type ChatResponse struct {
	Answer string      `json:"answer"`
	Places []PlaceInfo `json:"places"`
}

type PlaceDetailsResponse struct {
	PlaceName   string  `json:"place_name"`
	Details     string  `json:"details"`
	Coordinates *LatLng `json:"coordinates"`
	Type        string  `json:"type"`
}
