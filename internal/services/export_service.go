package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/request_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/response_models"
	"github.com/aezakzedd/pathfinder-black/pkg/memcache"
	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

// ExportServiceInterface turns a planning session into a downloadable PDF
// with a QR code pointing at it. Export is all-or-nothing: any failure along
// the way is a hard error, never a partial document.
type ExportServiceInterface interface {
	ExportSession(sessionID string) (*response_models.PDFResponse, error)
	RenderPDF(doc request_models.ItineraryPDFRequest) (*response_models.PDFResponse, error)
}

type ExportService struct {
	store      memcache.SessionStore
	exportsDir string
	baseURL    string
}

func NewExportService(store memcache.SessionStore, exportsDir string, baseURL string) ExportServiceInterface {
	return &ExportService{store: store, exportsDir: exportsDir, baseURL: baseURL}
}

func (s *ExportService) ExportSession(sessionID string) (*response_models.PDFResponse, error) {
	var doc request_models.ItineraryPDFRequest
	var buildErr error
	ok := s.store.Update(sessionID, func(session *plan_models.Session) {
		doc, buildErr = BuildItineraryDocument(session)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if buildErr != nil {
		return nil, buildErr
	}
	return s.RenderPDF(doc)
}

// BuildItineraryDocument flattens session state into the document structure.
// Dates are resolved per day from the trip start date; a day with no items
// still gets a page section so the printed plan matches what is on screen.
func BuildItineraryDocument(session *plan_models.Session) (request_models.ItineraryPDFRequest, error) {
	start, err := utils.ParseCalendarDate(session.Trip.StartDate)
	if err != nil {
		return request_models.ItineraryPDFRequest{}, fmt.Errorf("%w: bad start date: %v", utils.ErrInvalidInput, err)
	}
	end, err := utils.ParseCalendarDate(session.Trip.EndDate)
	if err != nil {
		return request_models.ItineraryPDFRequest{}, fmt.Errorf("%w: bad end date: %v", utils.ErrInvalidInput, err)
	}

	count := session.DayCount()
	days := make([]request_models.DayItinerary, 0, count)
	for i := 0; i < count; i++ {
		day := request_models.DayItinerary{
			Day:   i + 1,
			Date:  utils.FormatDayDate(start.AddDate(0, 0, i)),
			Items: []request_models.PDFItem{},
		}
		if slot, ok := session.Days[plan_models.DayKey(i)]; ok {
			day.Municipality = slot.Municipality
			for _, item := range slot.Items {
				day.Items = append(day.Items, request_models.PDFItem{
					Name:        item.Name,
					Description: item.Description,
				})
			}
		}
		days = append(days, day)
	}

	return request_models.ItineraryPDFRequest{
		StartDate: utils.FormatLongDate(start),
		EndDate:   utils.FormatLongDate(end),
		Budget:    session.Trip.Budget,
		Days:      days,
		Adults:    session.Trip.Adults,
		Children:  session.Trip.Children,
		Seniors:   session.Trip.Seniors,
	}, nil
}

func (s *ExportService) RenderPDF(doc request_models.ItineraryPDFRequest) (*response_models.PDFResponse, error) {
	if len(doc.Days) == 0 {
		return nil, fmt.Errorf("%w: itinerary has no days", utils.ErrInvalidInput)
	}

	filename := fmt.Sprintf("catanduanes-itinerary-%s.pdf", uuid.New().String()[:8])
	publicURL := fmt.Sprintf("%s/exports/%s", s.baseURL, filename)

	qrPNG, err := qrcode.Encode(publicURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("%w: qr encode: %v", utils.ErrExportFailed, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Catanduanes Travel Itinerary", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s to %s", doc.StartDate, doc.EndDate), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Budget: PHP %d    Adults: %d    Children: %d    Seniors: %d",
		doc.Budget, doc.Adults, doc.Children, doc.Seniors), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, day := range doc.Days {
		pdf.SetFont("Helvetica", "B", 13)
		header := fmt.Sprintf("Day %d - %s", day.Day, day.Date)
		if day.Municipality != "" {
			header += " - " + day.Municipality
		}
		pdf.CellFormat(0, 9, header, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		if len(day.Items) == 0 {
			pdf.CellFormat(0, 7, "Free day", "", 1, "L", false, 0, "")
		}
		for i, item := range day.Items {
			pdf.CellFormat(0, 7, fmt.Sprintf("%d. %s", i+1, item.Name), "", 1, "L", false, 0, "")
			if item.Description != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.MultiCell(0, 5, "    "+item.Description, "", "L", false)
				pdf.SetFont("Helvetica", "", 11)
			}
		}
		pdf.Ln(3)
	}

	// QR code on the last page so the printed copy links back to the download.
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.Ln(4)
	pdf.ImageOptions("qr", 80, pdf.GetY(), 50, 50, false, opts, 0, "")

	if err := os.MkdirAll(s.exportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: exports dir: %v", utils.ErrExportFailed, err)
	}
	path := filepath.Join(s.exportsDir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return nil, fmt.Errorf("%w: write pdf: %v", utils.ErrExportFailed, err)
	}

	return &response_models.PDFResponse{
		Success:      true,
		PDFURL:       publicURL,
		QRCodeBase64: "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrPNG),
		Filename:     filename,
	}, nil
}
