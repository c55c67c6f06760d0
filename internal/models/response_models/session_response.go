package response_models

import "github.com/aezakzedd/pathfinder-black/internal/models/plan_models"

// Marker is what the map widget consumes: one pin per unique itinerary item
// that has a coordinate.
type Marker struct {
	ID          string                 `json:"id"`
	Coordinates plan_models.Coordinate `json:"coordinates"`
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
}

// CameraPan tells the map widget where to fly.
type CameraPan struct {
	Center   plan_models.Coordinate `json:"center"`
	Zoom     float64                `json:"zoom"`
	Duration int                    `json:"duration_ms"`
}

type SessionView struct {
	ID       string                          `json:"id"`
	Trip     plan_models.Trip                `json:"trip"`
	DayCount int                             `json:"day_count"`
	Days     map[string]*plan_models.DaySlot `json:"days"`
	Chat     []plan_models.ChatMessage       `json:"chat"`
	View     string                          `json:"active_view"`
	Markers  []Marker                        `json:"markers"`

	// RecentlyAdded lists item IDs added within the last moment so the
	// client can flash their markers.
	RecentlyAdded []string `json:"recently_added,omitempty"`
}

// SelectionResponse pairs the refreshed session with an optional camera-pan
// command triggered by the selection.
type SelectionResponse struct {
	Session   *SessionView `json:"session"`
	CameraPan *CameraPan   `json:"camera_pan,omitempty"`
}

// SessionChatResponse is the outcome of one chat turn inside a session.
type SessionChatResponse struct {
	Messages  []plan_models.ChatMessage `json:"messages"`
	Session   *SessionView              `json:"session"`
	CameraPan *CameraPan                `json:"camera_pan,omitempty"`
	Places    []PlaceInfo               `json:"places,omitempty"`
}
