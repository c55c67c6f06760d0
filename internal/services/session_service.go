package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/request_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/response_models"
	"github.com/aezakzedd/pathfinder-black/pkg/memcache"
	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

const (
	recentlyAddedWindow = 600 * time.Millisecond
	collapseDelay       = 400 * time.Millisecond
)

// SessionServiceInterface owns the per-visitor planning state: the trip, the
// day slots, the chat log and the map markers derived from them. Every
// mutation goes through the session store lock.
type SessionServiceInterface interface {
	CreateSession() *response_models.SessionView
	GetSession(id string) (*response_models.SessionView, error)
	DeleteSession(id string)

	UpdateTrip(id string, req request_models.UpdateTripRequest) (*response_models.SessionView, error)
	SelectMunicipality(id string, dayKey string, municipality string) (*response_models.SelectionResponse, error)
	ToggleCategory(id string, dayKey string, category string) (*response_models.SessionView, error)
	ToggleDay(id string, dayKey string) (*response_models.SessionView, error)

	AddItem(id string, dayKey string, poi plan_models.POI) (*response_models.SessionView, error)
	RemoveItem(id string, dayKey string, poiID string) (*response_models.SessionView, error)
	Markers(id string) ([]response_models.Marker, error)

	// ApplyGeneratedItinerary replaces the whole day set with a generated
	// plan, recording the day count override and switching the active view.
	ApplyGeneratedItinerary(id string, fallbackMunicipality string, gen *response_models.ItineraryResponse) error

	AppendChat(id string, msg plan_models.ChatMessage) error
	TripContext(id string) (plan_models.Trip, string, error)
	SetActiveDayAvailability(id string, pois []plan_models.POI) error
}

type SessionService struct {
	store        memcache.SessionStore
	availability AvailabilityServiceInterface
}

func NewSessionService(store memcache.SessionStore, availability AvailabilityServiceInterface) SessionServiceInterface {
	return &SessionService{store: store, availability: availability}
}

func (s *SessionService) CreateSession() *response_models.SessionView {
	session := plan_models.NewSession(uuid.New().String())
	s.resize(session)
	s.store.Put(session)
	return s.buildView(session)
}

func (s *SessionService) GetSession(id string) (*response_models.SessionView, error) {
	var view *response_models.SessionView
	ok := s.store.Update(id, func(session *plan_models.Session) {
		view = s.buildView(session)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return view, nil
}

func (s *SessionService) DeleteSession(id string) {
	s.store.Delete(id)
}

// UpdateTrip applies a partial trip update. A date change drops any AI day
// count override, re-derives the day key space and resets which days are
// expanded. Day itineraries are wiped only when the session is still fresh,
// meaning no day has a municipality chosen yet.
func (s *SessionService) UpdateTrip(id string, req request_models.UpdateTripRequest) (*response_models.SessionView, error) {
	var view *response_models.SessionView
	ok := s.store.Update(id, func(session *plan_models.Session) {
		datesChanged := false
		if req.StartDate != nil && *req.StartDate != session.Trip.StartDate {
			session.Trip.StartDate = *req.StartDate
			datesChanged = true
		}
		if req.EndDate != nil && *req.EndDate != session.Trip.EndDate {
			session.Trip.EndDate = *req.EndDate
			datesChanged = true
		}
		if req.Budget != nil {
			session.Trip.Budget = *req.Budget
		}
		if req.Adults != nil {
			session.Trip.Adults = *req.Adults
		}
		if req.Children != nil {
			session.Trip.Children = *req.Children
		}
		if req.Seniors != nil {
			session.Trip.Seniors = *req.Seniors
		}
		if req.Preferences != nil {
			session.Trip.Preferences = req.Preferences
		}

		if datesChanged {
			session.AIDayCount = 0
			fresh := !session.HasSelectedMunicipality()
			s.resize(session)
			for i := 0; i < session.DayCount(); i++ {
				slot := session.Days[plan_models.DayKey(i)]
				slot.Expanded = i == 0
				slot.Collapsing = false
				if fresh {
					slot.Items = []plan_models.POI{}
				}
			}
		}
		view = s.buildView(session)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return view, nil
}

// SelectMunicipality records an explicit municipality choice for one day,
// recomputes what is addable and returns the camera movement that frames the
// chosen municipality.
func (s *SessionService) SelectMunicipality(id string, dayKey string, municipality string) (*response_models.SelectionResponse, error) {
	if !plan_models.IsMunicipality(municipality) {
		return nil, utils.ErrInvalidInput
	}

	var view *response_models.SessionView
	var dayErr error
	ok := s.store.Update(id, func(session *plan_models.Session) {
		slot, found := s.slot(session, dayKey)
		if !found {
			dayErr = utils.ErrDayNotFound
			return
		}
		slot.Municipality = municipality
		slot.ExplicitMunicipality = true
		slot.Available = s.availability.ResolveDay(slot.Municipality, slot.Categories, slot.ExplicitMunicipality)
		view = s.buildView(session)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if dayErr != nil {
		return nil, dayErr
	}

	return &response_models.SelectionResponse{
		Session:   view,
		CameraPan: s.availability.MunicipalityCamera(municipality),
	}, nil
}

// ToggleCategory flips one category on a day and marks that day as the active
// one, so follow-up chat answers know which day's availability to refresh.
func (s *SessionService) ToggleCategory(id string, dayKey string, category string) (*response_models.SessionView, error) {
	if !plan_models.IsCategory(category) {
		return nil, utils.ErrInvalidInput
	}

	var view *response_models.SessionView
	var dayErr error
	ok := s.store.Update(id, func(session *plan_models.Session) {
		slot, found := s.slot(session, dayKey)
		if !found {
			dayErr = utils.ErrDayNotFound
			return
		}

		idx := -1
		for i, c := range slot.Categories {
			if c == category {
				idx = i
				break
			}
		}
		if idx >= 0 {
			slot.Categories = append(slot.Categories[:idx], slot.Categories[idx+1:]...)
		} else {
			slot.Categories = append(slot.Categories, category)
		}

		session.ActiveDay = dayKey
		slot.Available = s.availability.ResolveDay(slot.Municipality, slot.Categories, slot.ExplicitMunicipality)
		view = s.buildView(session)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if dayErr != nil {
		return nil, dayErr
	}
	return view, nil
}

// ToggleDay expands a collapsed day immediately. Collapsing an expanded day
// goes through a short Collapsing phase first so the client can animate it.
func (s *SessionService) ToggleDay(id string, dayKey string) (*response_models.SessionView, error) {
	var view *response_models.SessionView
	var dayErr error
	ok := s.store.Update(id, func(session *plan_models.Session) {
		slot, found := s.slot(session, dayKey)
		if !found {
			dayErr = utils.ErrDayNotFound
			return
		}
		if !slot.Expanded {
			slot.Expanded = true
			slot.Collapsing = false
		} else if !slot.Collapsing {
			slot.Collapsing = true
			time.AfterFunc(collapseDelay, func() {
				s.store.Update(id, func(session *plan_models.Session) {
					if inner, ok := session.Days[dayKey]; ok && inner.Collapsing {
						inner.Expanded = false
						inner.Collapsing = false
					}
				})
			})
		}
		view = s.buildView(session)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if dayErr != nil {
		return nil, dayErr
	}
	return view, nil
}

// AddItem appends a POI to a day. Adding an ID the day already holds is a
// no-op. The POI is marked recently added for a short window so the client
// can flash the corresponding marker.
func (s *SessionService) AddItem(id string, dayKey string, poi plan_models.POI) (*response_models.SessionView, error) {
	if poi.ID == "" {
		return nil, utils.ErrInvalidInput
	}

	var view *response_models.SessionView
	var dayErr error
	ok := s.store.Update(id, func(session *plan_models.Session) {
		slot, found := s.slot(session, dayKey)
		if !found {
			dayErr = utils.ErrDayNotFound
			return
		}
		for _, existing := range slot.Items {
			if existing.ID == poi.ID {
				view = s.buildView(session)
				return
			}
		}
		slot.Items = append(slot.Items, poi)
		session.RecentlyAdded[poi.ID] = true
		time.AfterFunc(recentlyAddedWindow, func() {
			s.store.Update(id, func(session *plan_models.Session) {
				delete(session.RecentlyAdded, poi.ID)
			})
		})
		view = s.buildView(session)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if dayErr != nil {
		return nil, dayErr
	}
	return view, nil
}

// RemoveItem drops a POI from a day by identity. Removing an absent ID is a
// no-op, not an error.
func (s *SessionService) RemoveItem(id string, dayKey string, poiID string) (*response_models.SessionView, error) {
	var view *response_models.SessionView
	var dayErr error
	ok := s.store.Update(id, func(session *plan_models.Session) {
		slot, found := s.slot(session, dayKey)
		if !found {
			dayErr = utils.ErrDayNotFound
			return
		}
		kept := slot.Items[:0]
		for _, item := range slot.Items {
			if item.ID != poiID {
				kept = append(kept, item)
			}
		}
		slot.Items = kept
		view = s.buildView(session)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if dayErr != nil {
		return nil, dayErr
	}
	return view, nil
}

func (s *SessionService) Markers(id string) ([]response_models.Marker, error) {
	var markers []response_models.Marker
	ok := s.store.Update(id, func(session *plan_models.Session) {
		markers = buildMarkers(session)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return markers, nil
}

func (s *SessionService) ApplyGeneratedItinerary(id string, fallbackMunicipality string, gen *response_models.ItineraryResponse) error {
	ok := s.store.Update(id, func(session *plan_models.Session) {
		mergeItinerary(session, fallbackMunicipality, gen)
		for _, slot := range session.Days {
			slot.Available = s.availability.ResolveDay(slot.Municipality, slot.Categories, slot.ExplicitMunicipality)
		}
	})
	if !ok {
		return utils.ErrSessionNotFound
	}
	return nil
}

func (s *SessionService) AppendChat(id string, msg plan_models.ChatMessage) error {
	ok := s.store.Update(id, func(session *plan_models.Session) {
		session.Chat = append(session.Chat, msg)
	})
	if !ok {
		return utils.ErrSessionNotFound
	}
	return nil
}

func (s *SessionService) TripContext(id string) (plan_models.Trip, string, error) {
	var trip plan_models.Trip
	var municipality string
	ok := s.store.Update(id, func(session *plan_models.Session) {
		trip = session.Trip
		municipality = session.FirstSelectedMunicipality()
	})
	if !ok {
		return plan_models.Trip{}, "", utils.ErrSessionNotFound
	}
	return trip, municipality, nil
}

// SetActiveDayAvailability overrides the active day's addable list with
// places surfaced by a chat answer. Silently does nothing when no day is
// active.
func (s *SessionService) SetActiveDayAvailability(id string, pois []plan_models.POI) error {
	ok := s.store.Update(id, func(session *plan_models.Session) {
		if session.ActiveDay == "" {
			return
		}
		if slot, found := session.Days[session.ActiveDay]; found {
			slot.Available = pois
		}
	})
	if !ok {
		return utils.ErrSessionNotFound
	}
	return nil
}

// resize makes sure a slot exists for every index in the current day key
// space. Existing slots keep their state; slots past the count stay in the
// map but are simply not shown.
func (s *SessionService) resize(session *plan_models.Session) {
	count := session.DayCount()
	for i := 0; i < count; i++ {
		key := plan_models.DayKey(i)
		if _, found := session.Days[key]; !found {
			session.Days[key] = plan_models.NewDaySlot(i == 0)
		}
	}
}

func (s *SessionService) slot(session *plan_models.Session, dayKey string) (*plan_models.DaySlot, bool) {
	idx := plan_models.DayIndex(dayKey)
	if idx < 0 || idx >= session.DayCount() {
		return nil, false
	}
	s.resize(session)
	return session.Days[dayKey], true
}

func (s *SessionService) buildView(session *plan_models.Session) *response_models.SessionView {
	count := session.DayCount()
	days := make(map[string]*plan_models.DaySlot, count)
	for i := 0; i < count; i++ {
		key := plan_models.DayKey(i)
		if slot, found := session.Days[key]; found {
			days[key] = slot
		}
	}
	recent := make([]string, 0, len(session.RecentlyAdded))
	for id := range session.RecentlyAdded {
		recent = append(recent, id)
	}
	return &response_models.SessionView{
		ID:            session.ID,
		Trip:          session.Trip,
		DayCount:      count,
		Days:          days,
		Chat:          session.Chat,
		View:          session.ActiveView,
		Markers:       buildMarkers(session),
		RecentlyAdded: recent,
	}
}

// buildMarkers derives the marker set from the itinerary alone. Every item
// with a coordinate gets one marker; duplicate IDs across days collapse into
// the first occurrence.
func buildMarkers(session *plan_models.Session) []response_models.Marker {
	seen := make(map[string]bool)
	markers := []response_models.Marker{}
	for i := 0; i < session.DayCount(); i++ {
		slot, found := session.Days[plan_models.DayKey(i)]
		if !found {
			continue
		}
		for _, item := range slot.Items {
			if item.Coordinates == nil || seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			markers = append(markers, response_models.Marker{
				ID:          item.ID,
				Coordinates: *item.Coordinates,
				Label:       item.Name,
				Description: item.Description,
			})
		}
	}
	return markers
}

// mergeItinerary overlays a generated plan onto a fresh day key space. Day
// numbers in the response are 1-based; missing or zero day numbers fall back
// to the number embedded in the map key.
func mergeItinerary(session *plan_models.Session, fallbackMunicipality string, gen *response_models.ItineraryResponse) {
	days := gen.Days
	if days < 1 {
		days = 1
	}

	fresh := make(map[string]*plan_models.DaySlot, days)
	for i := 0; i < days; i++ {
		fresh[plan_models.DayKey(i)] = plan_models.NewDaySlot(true)
	}

	for key, dayData := range gen.Itinerary {
		dayNum := dayData.Day
		if dayNum < 1 {
			dayNum = plan_models.GeneratedDayNumber(key)
		}
		if dayNum < 1 || dayNum > days {
			continue
		}
		slot := fresh[plan_models.DayKey(dayNum-1)]

		municipality := dayData.Municipality
		if municipality == "" {
			municipality = fallbackMunicipality
		}
		slot.Municipality = municipality
		// Counts as an explicit choice so availability resolves for the day.
		slot.ExplicitMunicipality = true

		categorySeen := make(map[string]bool)
		for _, place := range dayData.Places {
			description := place.Type
			if description == "" {
				description = "Tourist attraction"
			}
			coords := plan_models.IslandCenter
			if place.Coordinates != nil {
				coords = plan_models.Coordinate{Lng: place.Coordinates.Lng, Lat: place.Coordinates.Lat}
			} else if place.Lat != 0 || place.Lng != 0 {
				coords = plan_models.Coordinate{Lng: place.Lng, Lat: place.Lat}
			}
			slot.Items = append(slot.Items, plan_models.POI{
				ID:          place.Name,
				Name:        place.Name,
				Category:    place.Category,
				Description: description,
				Coordinates: &coords,
			})
			if place.Category != "" && !categorySeen[place.Category] {
				categorySeen[place.Category] = true
				slot.Categories = append(slot.Categories, place.Category)
			}
		}
	}

	session.Days = fresh
	session.AIDayCount = days
	session.ActiveView = "itinerary"
}
