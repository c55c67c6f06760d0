package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aezakzedd/pathfinder-black/internal/models/request_models"
	"github.com/aezakzedd/pathfinder-black/internal/services"
	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

func (e *ExportController) ExportSession(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	resp, err := e.exportService.ExportSession(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary exported")
}

func (e *ExportController) RenderPDF(c *gin.Context) {
	var req request_models.ItineraryPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Start date, end date and days are required")
		return
	}

	resp, err := e.exportService.RenderPDF(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "PDF generated")
}
