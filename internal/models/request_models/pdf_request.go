package request_models

// ItineraryPDFRequest is the document structure the PDF renderer consumes.
// The export formatter builds it from session state; the standalone endpoint
// accepts it directly.
type ItineraryPDFRequest struct {
	StartDate string         `json:"start_date" binding:"required"`
	EndDate   string         `json:"end_date" binding:"required"`
	Budget    int            `json:"budget"`
	Days      []DayItinerary `json:"days" binding:"required"`
	Adults    int            `json:"adults"`
	Children  int            `json:"children"`
	Seniors   int            `json:"seniors"`
}

type DayItinerary struct {
	Day          int       `json:"day"`
	Date         string    `json:"date"`
	Municipality string    `json:"municipality"`
	Items        []PDFItem `json:"items"`
}

type PDFItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
