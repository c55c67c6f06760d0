package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aezakzedd/pathfinder-black/internal/models/request_models"
	"github.com/aezakzedd/pathfinder-black/internal/services"
	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

func (s *SessionController) CreateSession(c *gin.Context) {
	view := s.sessionService.CreateSession()
	utils.RespondSuccess(c, view, "Session created")
}

func (s *SessionController) GetSession(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	view, err := s.sessionService.GetSession(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Session fetched")
}

func (s *SessionController) DeleteSession(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}
	s.sessionService.DeleteSession(sessionID)
	utils.RespondSuccess(c, nil, "Session deleted")
}

func (s *SessionController) UpdateTrip(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := s.sessionService.UpdateTrip(sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Trip updated")
}

func (s *SessionController) SelectMunicipality(c *gin.Context) {
	sessionID := c.Param("id")
	dayKey := c.Param("dayKey")
	if sessionID == "" || dayKey == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID and day key are required")
		return
	}

	var req request_models.SelectMunicipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Municipality is required")
		return
	}

	resp, err := s.sessionService.SelectMunicipality(sessionID, dayKey, req.Municipality)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Municipality selected")
}

func (s *SessionController) ToggleCategory(c *gin.Context) {
	sessionID := c.Param("id")
	dayKey := c.Param("dayKey")
	if sessionID == "" || dayKey == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID and day key are required")
		return
	}

	var req request_models.ToggleCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Category is required")
		return
	}

	view, err := s.sessionService.ToggleCategory(sessionID, dayKey, req.Category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Category toggled")
}

func (s *SessionController) ToggleDay(c *gin.Context) {
	sessionID := c.Param("id")
	dayKey := c.Param("dayKey")
	if sessionID == "" || dayKey == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID and day key are required")
		return
	}

	view, err := s.sessionService.ToggleDay(sessionID, dayKey)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Day toggled")
}

func (s *SessionController) AddItem(c *gin.Context) {
	sessionID := c.Param("id")
	dayKey := c.Param("dayKey")
	if sessionID == "" || dayKey == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID and day key are required")
		return
	}

	var req request_models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Item ID and name are required")
		return
	}

	view, err := s.sessionService.AddItem(sessionID, dayKey, req.ToPOI())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Item added")
}

func (s *SessionController) RemoveItem(c *gin.Context) {
	sessionID := c.Param("id")
	dayKey := c.Param("dayKey")
	itemID := c.Param("itemId")
	if sessionID == "" || dayKey == "" || itemID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID, day key and item ID are required")
		return
	}

	view, err := s.sessionService.RemoveItem(sessionID, dayKey, itemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Item removed")
}

func (s *SessionController) GetMarkers(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	markers, err := s.sessionService.Markers(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, markers, "Markers fetched")
}
