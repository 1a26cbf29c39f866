package utils

import (
	"bytes"
	"time"

	"lms/config"

	"github.com/jung-kurt/gofpdf"
)

// RenderCertificatePDF produces a landscape completion certificate as a
// byte stream. Pure layout; no state is read or written.
func RenderCertificatePDF(learnerName, achievement string, completionDate time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()

	// Border
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(27, 42, 74)
	pdf.Rect(10, 10, pageWidth-20, 190, "D")

	pdf.SetY(35)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(27, 42, 74)
	pdf.CellFormat(0, 14, "CERTIFICATE OF COMPLETION", "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 8, "This is to certify that", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(27, 42, 74)
	pdf.CellFormat(0, 12, learnerName, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 8, "has successfully completed", "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(27, 42, 74)
	pdf.MultiCell(0, 9, achievement, "", "C", false)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 8, "Completed on: "+completionDate.Format("January 2, 2006"), "", 1, "C", false, 0, "")

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "_________________________", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, config.AppConfig.CertificateSigner, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
