package request_models

import "github.com/aezakzedd/pathfinder-black/internal/models/plan_models"

type UpdateTripRequest struct {
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Budget      *int     `json:"budget,omitempty"`
	Adults      *int     `json:"adults,omitempty"`
	Children    *int     `json:"children,omitempty"`
	Seniors     *int     `json:"seniors,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

type SelectMunicipalityRequest struct {
	Municipality string `json:"municipality" binding:"required"`
}

type ToggleCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type AddItemRequest struct {
	ID          string                  `json:"id" binding:"required"`
	Name        string                  `json:"name" binding:"required"`
	Category    string                  `json:"category"`
	Description string                  `json:"description"`
	Coordinates *plan_models.Coordinate `json:"coordinates,omitempty"`
}

func (r AddItemRequest) ToPOI() plan_models.POI {
	return plan_models.POI{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Coordinates: r.Coordinates,
	}
}
