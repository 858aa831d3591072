// Package receipt renders payment receipts as PDF documents.
package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Data carries everything a receipt shows
type Data struct {
	TransactionID string
	MerchantName  string
	Description   string
	AmountRupees  int
	Currency      string
	PaidAt        time.Time
	PayerName     string
	PayerEmail    string
}

// Render produces a single-page PDF receipt.
func Render(d Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, d.MerchantName)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "Payment Receipt")
	pdf.Ln(12)

	rows := [][2]string{
		{"Transaction ID", d.TransactionID},
		{"Date", d.PaidAt.Format("02 Jan 2006 15:04 MST")},
		{"Paid by", d.PayerName},
		{"Email", d.PayerEmail},
		{"Description", d.Description},
		{"Amount", fmt.Sprintf("%s %d.00", d.Currency, d.AmountRupees)},
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "This is a computer generated receipt and does not require a signature.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}
