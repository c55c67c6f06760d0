package response_models

import "github.com/aezakzedd/pathfinder-black/internal/models/plan_models"

type MunicipalityListResponse struct {
	Municipalities []string `json:"municipalities"`
	Total          int      `json:"total"`
}

type PreferencesResponse struct {
	Preferences []string `json:"preferences"`
	Description string   `json:"description"`
}

type CategoriesResponse struct {
	Categories []plan_models.Category `json:"categories"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	PipelineReady bool   `json:"pipeline_ready"`
	Message       string `json:"message"`
}
