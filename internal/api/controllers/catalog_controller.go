package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/response_models"
	"github.com/aezakzedd/pathfinder-black/internal/services"
	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

// CatalogController serves the static planning vocabulary: municipalities,
// POI categories, activity preferences and the health probe.
type CatalogController struct {
	chatService services.ChatServiceInterface
}

func NewCatalogController(chatService services.ChatServiceInterface) *CatalogController {
	return &CatalogController{
		chatService: chatService,
	}
}

func (ct *CatalogController) GetMunicipalities(c *gin.Context) {
	resp := response_models.MunicipalityListResponse{
		Municipalities: plan_models.Municipalities,
		Total:          len(plan_models.Municipalities),
	}
	utils.RespondSuccess(c, resp, "Municipalities fetched")
}

func (ct *CatalogController) GetCategories(c *gin.Context) {
	resp := response_models.CategoriesResponse{
		Categories: plan_models.Categories,
	}
	utils.RespondSuccess(c, resp, "Categories fetched")
}

func (ct *CatalogController) GetPreferences(c *gin.Context) {
	resp := response_models.PreferencesResponse{
		Preferences: plan_models.ActivityPreferences,
		Description: "Activity preferences used to personalize itineraries",
	}
	utils.RespondSuccess(c, resp, "Preferences fetched")
}

func (ct *CatalogController) Health(c *gin.Context) {
	ready := ct.chatService.Ready()
	message := "All systems operational"
	if !ready {
		message = "Chat assistant is still initializing"
	}
	utils.RespondSuccess(c, response_models.HealthResponse{
		Status:        "healthy",
		PipelineReady: ready,
		Message:       message,
	}, "Health checked")
}
