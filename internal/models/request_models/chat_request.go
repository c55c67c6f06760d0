package request_models

// ChatRequest is the stateless chat endpoint body.
type ChatRequest struct {
	Message      string   `json:"message" binding:"required"`
	Preferences  []string `json:"preferences"`
	Municipality *string  `json:"municipality"`
}

// SessionChatRequest is a message posted into a planning session's chat.
type SessionChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type PlaceDetailsRequest struct {
	PlaceName string `json:"place_name" binding:"required"`
}
