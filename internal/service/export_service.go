package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Aellun/exam-wishes-app/internal/domain"
)

var ErrRender = errors.New("export render failed")

const pdfTitle = "Good Luck Board Messages"

// wishRecord fija el orden de campos y el formato de fecha del export JSON.
type wishRecord struct {
	Text      string `json:"text"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"`
}

// ExportService convierte la lista de deseos en documentos JSON o PDF.
// Ambas salidas son funciones puras de la secuencia de entrada.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ExportJSON serializa los deseos preservando el orden de entrada. La salida
// es determinista: mismo input, mismos bytes. Una lista vacía produce "[]".
func (s *ExportService) ExportJSON(wishes []domain.Wish) ([]byte, error) {
	records := make([]wishRecord, 0, len(wishes))
	for _, w := range wishes {
		records = append(records, wishRecord{
			Text:      w.Text,
			Author:    w.Author,
			CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return json.Marshal(records)
}

// ExportPDF genera un documento A4 con un bloque por deseo. Una lista vacía
// produce un PDF válido con un texto indicativo.
func (s *ExportService) ExportPDF(wishes []domain.Wish) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pdfTitle, true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(pdfTitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	if len(wishes) == 0 {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.CellFormat(0, 10, "No messages yet.", "", 1, "C", false, 0, "")
	}

	pageWidth, _ := pdf.GetPageSize()
	for _, w := range wishes {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, tr("From: "+w.Author), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, w.CreatedAt.UTC().Format(time.RFC3339), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(w.Text), "", "L", false)

		pdf.Ln(3)
		y := pdf.GetY()
		pdf.Line(20, y, pageWidth-20, y)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
