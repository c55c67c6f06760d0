package services

import (
	"log"

	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/response_models"
	"github.com/aezakzedd/pathfinder-black/internal/repositories"
)

// AvailabilityServiceInterface resolves the POIs that can be added to a day
// given its current municipality and category selection.
type AvailabilityServiceInterface interface {
	ResolveDay(municipality string, categories []string, explicitSelection bool) []plan_models.POI
	MunicipalityCamera(municipality string) *response_models.CameraPan
}

type AvailabilityService struct {
	geodataRepo repositories.GeodataRepository
}

func NewAvailabilityService(geodataRepo repositories.GeodataRepository) AvailabilityServiceInterface {
	return &AvailabilityService{geodataRepo: geodataRepo}
}

// ResolveDay returns the addable POIs for one day. All three gates must hold:
// the municipality was chosen by the user (not a default), it is non-empty,
// and at least one category is selected. A geodata failure degrades to an
// empty list so the rest of the day state stays usable.
func (s *AvailabilityService) ResolveDay(municipality string, categories []string, explicitSelection bool) []plan_models.POI {
	if !explicitSelection || municipality == "" || len(categories) == 0 {
		return []plan_models.POI{}
	}

	pois, err := s.geodataRepo.LoadMunicipalityPOIs(municipality)
	if err != nil {
		log.Printf("availability: failed to load POIs for %s: %v", municipality, err)
		return []plan_models.POI{}
	}

	selected := make(map[string]bool, len(categories))
	for _, c := range categories {
		selected[c] = true
	}

	filtered := make([]plan_models.POI, 0, len(pois))
	for _, poi := range pois {
		if selected[poi.Category] {
			filtered = append(filtered, poi)
		}
	}
	return filtered
}

// MunicipalityCamera builds the camera movement for a municipality selection.
// Returns nil when bounds cannot be computed, in which case the map simply
// stays where it is.
func (s *AvailabilityService) MunicipalityCamera(municipality string) *response_models.CameraPan {
	center, zoom, err := s.geodataRepo.MunicipalityBounds(municipality)
	if err != nil {
		log.Printf("availability: no bounds for %s: %v", municipality, err)
		return nil
	}
	return &response_models.CameraPan{
		Center:   *center,
		Zoom:     zoom,
		Duration: 1200,
	}
}
