package plan_models

import (
	"time"

	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

type Coordinate struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// IslandCenter is the default coordinate used when a generated place arrives
// without one, so the marker still lands on the island.
var IslandCenter = Coordinate{Lng: 124.25, Lat: 13.75}

// POI is a value type: it is copied into day lists and markers, never shared.
// ID is the identity used for de-duplication and removal; two POIs with the
// same ID are the same place regardless of the rest of the fields.
type POI struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Coordinates *Coordinate `json:"coordinates,omitempty"`
	Ordinal     int         `json:"-"`
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// DaySlot holds everything the planner tracks for one day of the trip.
type DaySlot struct {
	Expanded             bool     `json:"expanded"`
	Collapsing           bool     `json:"collapsing"`
	Municipality         string   `json:"municipality"`
	ExplicitMunicipality bool     `json:"explicit_municipality"`
	Categories           []string `json:"categories"`
	Items                []POI    `json:"items"`
	Available            []POI    `json:"available"`
}

func NewDaySlot(expanded bool) *DaySlot {
	return &DaySlot{
		Expanded:   expanded,
		Categories: []string{},
		Items:      []POI{},
		Available:  []POI{},
	}
}

type Trip struct {
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      int      `json:"budget"`
	Adults      int      `json:"adults"`
	Children    int      `json:"children"`
	Seniors     int      `json:"seniors"`
	Preferences []string `json:"preferences"`
}

// Session is the per-visitor planning state. It lives only in memory for the
// lifetime of the visit; nothing here is persisted.
type Session struct {
	ID            string                  `json:"id"`
	Trip          Trip                    `json:"trip"`
	AIDayCount    int                     `json:"ai_day_count,omitempty"`
	Days          map[string]*DaySlot     `json:"days"`
	Chat          []ChatMessage           `json:"chat"`
	ActiveDay     string                  `json:"active_day,omitempty"`
	ActiveView    string                  `json:"active_view"`
	RecentlyAdded map[string]bool         `json:"recently_added,omitempty"`
}

const greeting = "Hi! I'm Pathfinder. Ask me anything about Catanduanes tourism or use me to help create your itinerary!"

func NewSession(id string) *Session {
	today := time.Now()
	return &Session{
		ID: id,
		Trip: Trip{
			StartDate:   today.Format("2006-01-02"),
			EndDate:     today.AddDate(0, 0, 2).Format("2006-01-02"),
			Budget:      5000,
			Adults:      2,
			Children:    1,
			Seniors:     1,
			Preferences: []string{},
		},
		Days:          map[string]*DaySlot{},
		Chat:          []ChatMessage{{Role: RoleAssistant, Text: greeting}},
		ActiveView:    "plan",
		RecentlyAdded: map[string]bool{},
	}
}

// DayCount returns the AI-overridden count when one was recorded, otherwise
// the inclusive span of the trip dates. An unparseable date pins the trip at
// one day rather than failing.
func (s *Session) DayCount() int {
	if s.AIDayCount > 0 {
		return s.AIDayCount
	}

	start, err := utils.ParseCalendarDate(s.Trip.StartDate)
	if err != nil {
		return 1
	}
	end, err := utils.ParseCalendarDate(s.Trip.EndDate)
	if err != nil {
		return 1
	}

	return utils.InclusiveDays(start, end)
}

// HasSelectedMunicipality reports whether any day has a municipality chosen.
// It gates the fresh-session itinerary reset: once a visitor has picked a
// place, a date change must not wipe their work.
func (s *Session) HasSelectedMunicipality() bool {
	for _, slot := range s.Days {
		if slot.Municipality != "" {
			return true
		}
	}
	return false
}

// FirstSelectedMunicipality walks days in index order and returns the first
// chosen municipality, or empty when none is set.
func (s *Session) FirstSelectedMunicipality() string {
	for i := 0; i < s.DayCount(); i++ {
		if slot, ok := s.Days[DayKey(i)]; ok && slot.Municipality != "" {
			return slot.Municipality
		}
	}
	return ""
}
