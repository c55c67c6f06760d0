package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aezakzedd/pathfinder-black/internal/models/request_models"
	"github.com/aezakzedd/pathfinder-black/internal/services"
	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	resp, err := ch.chatService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Answer generated")
}

func (ch *ChatController) SessionChat(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.SessionChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	resp, err := ch.chatService.HandleSessionMessage(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Message handled")
}

func (ch *ChatController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Municipality and day count are required")
		return
	}

	resp, err := ch.chatService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary generated")
}

func (ch *ChatController) PlaceDetails(c *gin.Context) {
	var req request_models.PlaceDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Place name is required")
		return
	}

	resp, err := ch.chatService.PlaceDetails(c.Request.Context(), req.PlaceName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Place details fetched")
}
