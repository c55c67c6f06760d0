package response_models

// PDFResponse reports a finished export. All three of Success, PDFURL and
// QRCodeBase64 must be present for the client to show the download modal; a
// partial response is treated as a failure.
type PDFResponse struct {
	Success      bool   `json:"success"`
	PDFURL       string `json:"pdfUrl"`
	QRCodeBase64 string `json:"qrCodeBase64"`
	Filename     string `json:"filename,omitempty"`
}
