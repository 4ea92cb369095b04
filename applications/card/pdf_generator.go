package card

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
)

// GenerateMembershipPDF renders a one-page membership card for a finalized
// order: ticket summary, perk bundle, and a QR code pointing at the public
// card view.
func GenerateMembershipPDF(o order.Order, publicBaseURL string) ([]byte, error) {
	perks := order.Perks(o.Client.Package)
	price := order.PriceCents(o.Client.Package)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	// --- Header ---
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "FANMEETZONE VIP MEMBERSHIP CARD")
	pdf.Ln(20)

	// --- Divider ---
	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	// --- Membership Summary + QR ---
	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 60, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "MEMBERSHIP SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Ticket ID: %s", o.TicketID))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Member: %s", o.Client.FullName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Celebrity: %s", o.Celebrity.Name))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Package: %s", strings.Title(o.Client.Package)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total: $%.2f", float64(price)/100))
	pdf.Ln(6)
	statusLabel := string(o.Status)
	if statusLabel == "" {
		statusLabel = "paid"
	}
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", statusLabel))

	// QR links back to the live card so staff can check the current status.
	qrURL := fmt.Sprintf("%s/card/%s", strings.TrimRight(publicBaseURL, "/"), o.TicketID)
	qrBytes, err := qrcode.Encode(qrURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 145, yStart+7, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 68)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Scan this QR code for entry verification.")
	pdf.Ln(10)

	// --- Perks ---
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, strings.ToUpper(perks.Title), "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 12)
	for i, b := range perks.Benefits {
		pdf.Cell(0, 8, fmt.Sprintf("%d. %s", i+1, b))
		pdf.Ln(6)
	}

	// --- Footer at bottom of page ---
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "© 2026 FanMeetZone. All Rights Reserved.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
