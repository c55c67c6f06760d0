package request_models

type ItineraryRequest struct {
	Municipality string   `json:"municipality" binding:"required"`
	Preferences  []string `json:"preferences"`
	Days         int      `json:"days" binding:"required,min=1,max=14"`
	Budget       int      `json:"budget"`
}
