package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aezakzedd/pathfinder-black/internal/models/db_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/request_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/response_models"
	"github.com/aezakzedd/pathfinder-black/internal/repositories"
	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

const (
	maxRetrievedPOIs = 20
	maxAnswerPlaces  = 8

	initializingAnswer = "The assistant is still warming up. Please try again in a moment."
	troubleAnswer      = "Sorry, I ran into a problem answering that. Please try again."
)

// preferenceKeywords expands an activity preference into catalog search terms.
var preferenceKeywords = map[string][]string{
	"Swimming":    {"beach", "falls", "island"},
	"Hiking":      {"trail", "mountain", "viewpoint"},
	"Surfing":     {"surf", "wave", "beach"},
	"Sightseeing": {"viewpoint", "scenic", "landmark"},
	"Historical":  {"heritage", "church", "museum"},
	"Shopping":    {"market", "souvenir"},
	"Dining":      {"restaurant", "cafe", "food"},
}

type ChatServiceInterface interface {
	// Chat answers one stateless question grounded on the POI catalog.
	Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error)

	// GenerateItinerary retrieves matching places and distributes them over
	// the requested days, with an AI-written recommendation on top.
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)

	PlaceDetails(ctx context.Context, placeName string) (*response_models.PlaceDetailsResponse, error)

	// HandleSessionMessage runs one chat turn inside a planning session:
	// classify the message, then either generate-and-merge an itinerary or
	// answer with relevant places.
	HandleSessionMessage(ctx context.Context, sessionID string, message string) (*response_models.SessionChatResponse, error)

	Ready() bool
}

type ChatService struct {
	aiClient      utils.AIClientInterface
	poiRepo       repositories.POIRepository
	embeddingRepo repositories.IPoiEmbeddingRepository
	classifier    IntentClassifierInterface
	sessions      SessionServiceInterface
}

func NewChatService(
	aiClient utils.AIClientInterface,
	poiRepo repositories.POIRepository,
	embeddingRepo repositories.IPoiEmbeddingRepository,
	classifier IntentClassifierInterface,
	sessions SessionServiceInterface,
) ChatServiceInterface {
	return &ChatService{
		aiClient:      aiClient,
		poiRepo:       poiRepo,
		embeddingRepo: embeddingRepo,
		classifier:    classifier,
		sessions:      sessions,
	}
}

func (s *ChatService) Ready() bool {
	return s.aiClient != nil
}

func (s *ChatService) Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	municipality := ""
	if req.Municipality != nil {
		municipality = *req.Municipality
	}

	pois := s.findRelevantPOIs(ctx, req.Message, municipality, req.Preferences)
	places := poisToPlaces(pois, maxAnswerPlaces)

	if s.aiClient == nil {
		return &response_models.ChatResponse{Answer: initializingAnswer, Places: places}, nil
	}

	answer, err := s.aiClient.GenerateAnswer(ctx, buildChatPrompt(req.Message, req.Preferences, pois))
	if err != nil {
		log.Printf("chat: answer generation failed: %v", err)
		return &response_models.ChatResponse{Answer: troubleAnswer, Places: places}, nil
	}

	return &response_models.ChatResponse{Answer: answer, Places: places}, nil
}

func (s *ChatService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	if !plan_models.IsMunicipality(req.Municipality) {
		return nil, fmt.Errorf("%w: unknown municipality %q", utils.ErrInvalidInput, req.Municipality)
	}
	if s.aiClient == nil {
		return nil, utils.ErrAIUnavailable
	}

	query := fmt.Sprintf("best tourist attractions, food and places to stay in %s", req.Municipality)
	pois := s.findRelevantPOIs(ctx, query, req.Municipality, req.Preferences)
	if len(pois) == 0 {
		all, err := s.poiRepo.ListByMunicipality(ctx, req.Municipality)
		if err != nil {
			log.Printf("itinerary: catalog fallback failed for %s: %v", req.Municipality, err)
		}
		pois = all
	}

	itinerary, total := distributePlaces(pois, req.Days)

	recommendation, err := s.aiClient.GenerateAnswer(ctx, buildItineraryPrompt(req, pois))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}

	return &response_models.ItineraryResponse{
		Success:          true,
		Municipality:     req.Municipality,
		Preferences:      req.Preferences,
		Days:             req.Days,
		Budget:           req.Budget,
		AIRecommendation: recommendation,
		Itinerary:        itinerary,
		TotalPlaces:      total,
	}, nil
}

func (s *ChatService) PlaceDetails(ctx context.Context, placeName string) (*response_models.PlaceDetailsResponse, error) {
	poi, err := s.poiRepo.FindByName(ctx, placeName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if poi == nil {
		return nil, utils.ErrPOINotFound
	}

	details := poi.Description
	if s.aiClient != nil {
		prompt := fmt.Sprintf(
			"Tell a visitor about %s in %s, Catanduanes. Known details: %s. Keep it to a short paragraph.",
			poi.Name, poi.Municipality, poi.Description,
		)
		if answer, err := s.aiClient.GenerateAnswer(ctx, prompt); err == nil {
			details = answer
		} else {
			log.Printf("chat: place details generation failed for %s: %v", placeName, err)
		}
	}

	return &response_models.PlaceDetailsResponse{
		PlaceName:   poi.Name,
		Details:     details,
		Coordinates: &response_models.LatLng{Lat: poi.Latitude, Lng: poi.Longitude},
		Type:        poi.Category,
	}, nil
}

func (s *ChatService) HandleSessionMessage(ctx context.Context, sessionID string, message string) (*response_models.SessionChatResponse, error) {
	if err := s.sessions.AppendChat(sessionID, plan_models.ChatMessage{Role: plan_models.RoleUser, Text: message}); err != nil {
		return nil, err
	}

	intent := s.classifier.Classify(message)
	if intent.Kind == IntentGenerateItinerary {
		return s.handleGenerate(ctx, sessionID, intent)
	}
	return s.handleGeneral(ctx, sessionID, message, intent)
}

func (s *ChatService) handleGenerate(ctx context.Context, sessionID string, intent Intent) (*response_models.SessionChatResponse, error) {
	trip, municipality, err := s.sessions.TripContext(sessionID)
	if err != nil {
		return nil, err
	}
	if municipality == "" {
		municipality = plan_models.DefaultMunicipality
	}

	progress := plan_models.ChatMessage{
		Role: plan_models.RoleAssistant,
		Text: fmt.Sprintf("Generating a %d-day itinerary for %s with your preferences...", intent.Days, municipality),
	}
	if err := s.sessions.AppendChat(sessionID, progress); err != nil {
		return nil, err
	}

	gen, err := s.GenerateItinerary(ctx, request_models.ItineraryRequest{
		Municipality: municipality,
		Preferences:  trip.Preferences,
		Days:         intent.Days,
		Budget:       trip.Budget,
	})
	if err != nil {
		log.Printf("chat: itinerary generation failed in session %s: %v", sessionID, err)
		failure := plan_models.ChatMessage{
			Role: plan_models.RoleAssistant,
			Text: "Sorry, I could not put that itinerary together. Please try again.",
		}
		if appendErr := s.sessions.AppendChat(sessionID, failure); appendErr != nil {
			return nil, appendErr
		}
		return s.respondWithSession(sessionID, []plan_models.ChatMessage{progress, failure}, nil, nil)
	}

	if err := s.sessions.ApplyGeneratedItinerary(sessionID, municipality, gen); err != nil {
		return nil, err
	}

	doneText := fmt.Sprintf("Done! I've put together a %d-day itinerary for %s.", gen.Days, municipality)
	if gen.AIRecommendation != "" {
		doneText += "\n\n" + gen.AIRecommendation
	}
	done := plan_models.ChatMessage{Role: plan_models.RoleAssistant, Text: doneText}
	if err := s.sessions.AppendChat(sessionID, done); err != nil {
		return nil, err
	}

	return s.respondWithSession(sessionID, []plan_models.ChatMessage{progress, done}, nil, nil)
}

func (s *ChatService) handleGeneral(ctx context.Context, sessionID string, message string, intent Intent) (*response_models.SessionChatResponse, error) {
	trip, municipality, err := s.sessions.TripContext(sessionID)
	if err != nil {
		return nil, err
	}

	var muniPtr *string
	if municipality != "" {
		muniPtr = &municipality
	}
	resp, err := s.Chat(ctx, request_models.ChatRequest{
		Message:      message,
		Preferences:  trip.Preferences,
		Municipality: muniPtr,
	})
	if err != nil {
		return nil, err
	}

	reply := plan_models.ChatMessage{Role: plan_models.RoleAssistant, Text: resp.Answer}
	if err := s.sessions.AppendChat(sessionID, reply); err != nil {
		return nil, err
	}

	if len(resp.Places) > 0 {
		if err := s.sessions.SetActiveDayAvailability(sessionID, placesToPOIs(resp.Places)); err != nil {
			return nil, err
		}
	}

	var pan *response_models.CameraPan
	if intent.Inquiry && len(resp.Places) > 0 {
		first := resp.Places[0]
		pan = &response_models.CameraPan{
			Center:   plan_models.Coordinate{Lng: first.Lng, Lat: first.Lat},
			Zoom:     14,
			Duration: 1000,
		}
	}

	return s.respondWithSession(sessionID, []plan_models.ChatMessage{reply}, pan, resp.Places)
}

func (s *ChatService) respondWithSession(sessionID string, messages []plan_models.ChatMessage, pan *response_models.CameraPan, places []response_models.PlaceInfo) (*response_models.SessionChatResponse, error) {
	view, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return &response_models.SessionChatResponse{
		Messages:  messages,
		Session:   view,
		CameraPan: pan,
		Places:    places,
	}, nil
}

// findRelevantPOIs combines vector similarity with keyword search. Either leg
// can fail independently; retrieval degrades instead of erroring so chat
// stays responsive without the database or the embedding provider.
func (s *ChatService) findRelevantPOIs(ctx context.Context, query string, municipality string, preferences []string) []db_models.POI {
	var pois []db_models.POI
	seen := make(map[string]bool)

	if s.aiClient != nil {
		if vec, err := s.aiClient.GetEmbedding(ctx, query); err == nil {
			embeddings, err := s.embeddingRepo.ListSimilarPois(vec, municipality, maxRetrievedPOIs)
			if err != nil {
				log.Printf("chat: similarity search failed: %v", err)
			} else if len(embeddings) > 0 {
				ids := make([]string, 0, len(embeddings))
				for _, e := range embeddings {
					ids = append(ids, e.PoiID)
				}
				rows, err := s.poiRepo.ListByIds(ctx, ids)
				if err != nil {
					log.Printf("chat: POI lookup by id failed: %v", err)
				}
				for _, id := range ids {
					for _, row := range rows {
						if row.ID.String() == id && !seen[id] {
							seen[id] = true
							pois = append(pois, row)
						}
					}
				}
			}
		} else {
			log.Printf("chat: embedding failed, keyword search only: %v", err)
		}
	}

	keywords := extractKeywords(query, preferences)
	if len(keywords) > 0 && len(pois) < maxRetrievedPOIs {
		rows, err := s.poiRepo.SearchByKeywords(ctx, keywords, municipality)
		if err != nil {
			log.Printf("chat: keyword search failed: %v", err)
		}
		for _, row := range rows {
			if !seen[row.ID.String()] {
				seen[row.ID.String()] = true
				pois = append(pois, row)
			}
		}
	}

	if len(pois) > maxRetrievedPOIs {
		pois = pois[:maxRetrievedPOIs]
	}
	return pois
}

func extractKeywords(query string, preferences []string) []string {
	keywords := []string{}
	for _, token := range strings.Fields(strings.ToLower(query)) {
		if len(token) > 3 {
			keywords = append(keywords, token)
		}
	}
	for _, pref := range preferences {
		keywords = append(keywords, preferenceKeywords[pref]...)
	}
	return keywords
}

// distributePlaces spreads the retrieved places over the requested days in
// order. Every day gets an even share; the remainder lands on the last day.
func distributePlaces(pois []db_models.POI, days int) (map[string]response_models.ItineraryDay, int) {
	if days < 1 {
		days = 1
	}
	perDay := len(pois) / days
	if perDay < 1 {
		perDay = 1
	}

	itinerary := make(map[string]response_models.ItineraryDay, days)
	total := 0
	cursor := 0
	for day := 1; day <= days; day++ {
		take := perDay
		if day == days {
			take = len(pois) - cursor
		}
		if take < 0 {
			take = 0
		}
		if cursor+take > len(pois) {
			take = len(pois) - cursor
		}

		slice := pois[cursor : cursor+take]
		cursor += take

		places := make([]response_models.ItineraryPlace, 0, len(slice))
		activities := []string{}
		activitySeen := make(map[string]bool)
		municipality := ""
		for _, poi := range slice {
			places = append(places, response_models.ItineraryPlace{
				Name:     poi.Name,
				Type:     poi.Category,
				Category: poi.Category,
				Lat:      poi.Latitude,
				Lng:      poi.Longitude,
				Coordinates: &response_models.LatLng{
					Lat: poi.Latitude,
					Lng: poi.Longitude,
				},
			})
			if poi.Category != "" && !activitySeen[poi.Category] {
				activitySeen[poi.Category] = true
				activities = append(activities, poi.Category)
			}
			if municipality == "" {
				municipality = poi.Municipality
			}
		}
		total += len(places)

		itinerary[fmt.Sprintf("day_%d", day)] = response_models.ItineraryDay{
			Day:          day,
			Municipality: municipality,
			Places:       places,
			Activities:   activities,
		}
	}
	return itinerary, total
}

func buildChatPrompt(message string, preferences []string, pois []db_models.POI) string {
	var b strings.Builder
	b.WriteString("You are a friendly tourism assistant for Catanduanes, Philippines. ")
	b.WriteString("Answer the visitor's question using the places listed below. Keep it short and concrete.\n\n")
	if len(preferences) > 0 {
		fmt.Fprintf(&b, "Visitor preferences: %s\n", strings.Join(preferences, ", "))
	}
	if len(pois) > 0 {
		b.WriteString("Relevant places:\n")
		for _, poi := range pois {
			fmt.Fprintf(&b, "- %s (%s, %s): %s\n", poi.Name, poi.Category, poi.Municipality, poi.Description)
		}
	}
	fmt.Fprintf(&b, "\nQuestion: %s", message)
	return b.String()
}

func buildItineraryPrompt(req request_models.ItineraryRequest, pois []db_models.POI) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short recommendation for a %d-day trip to %s, Catanduanes", req.Days, req.Municipality)
	if req.Budget > 0 {
		fmt.Fprintf(&b, " on a budget of about %d pesos", req.Budget)
	}
	b.WriteString(".\n")
	if len(req.Preferences) > 0 {
		fmt.Fprintf(&b, "The visitor enjoys: %s.\n", strings.Join(req.Preferences, ", "))
	}
	if len(pois) > 0 {
		b.WriteString("The itinerary includes:\n")
		for _, poi := range pois {
			fmt.Fprintf(&b, "- %s (%s)\n", poi.Name, poi.Category)
		}
	}
	b.WriteString("Two or three sentences, no lists.")
	return b.String()
}

func poisToPlaces(pois []db_models.POI, limit int) []response_models.PlaceInfo {
	places := []response_models.PlaceInfo{}
	for _, poi := range pois {
		if len(places) >= limit {
			break
		}
		places = append(places, response_models.PlaceInfo{
			Name: poi.Name,
			Lat:  poi.Latitude,
			Lng:  poi.Longitude,
			Type: poi.Category,
			Coordinates: &response_models.LatLng{
				Lat: poi.Latitude,
				Lng: poi.Longitude,
			},
		})
	}
	return places
}

func placesToPOIs(places []response_models.PlaceInfo) []plan_models.POI {
	pois := make([]plan_models.POI, 0, len(places))
	for _, p := range places {
		pois = append(pois, plan_models.POI{
			ID:          p.Name,
			Name:        p.Name,
			Category:    p.Type,
			Description: p.Type,
			Coordinates: &plan_models.Coordinate{Lng: p.Lng, Lat: p.Lat},
		})
	}
	return pois
}
