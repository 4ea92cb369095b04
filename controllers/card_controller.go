package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verifiedboiy/fanmeetzone/applications/card"
	"github.com/verifiedboiy/fanmeetzone/store"
)

// CardController serves the public membership card view for finalized
// orders.
type CardController struct {
	Store         *store.RecordStore
	PublicBaseURL string
}

// ViewCardController handles GET /card/:ticketID.
func (cc *CardController) ViewCardController(c echo.Context) error {
	ticketID := c.Param("ticketID")

	o, found := cc.Store.FindByTicket(ticketID)
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Card not found"})
	}
	return c.JSON(http.StatusOK, o)
}

// CardPDFController handles GET /card/:ticketID/pdf.
func (cc *CardController) CardPDFController(c echo.Context) error {
	ticketID := c.Param("ticketID")

	o, found := cc.Store.FindByTicket(ticketID)
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Card not found"})
	}

	pdfBytes, err := card.GenerateMembershipPDF(o, cc.PublicBaseURL)
	if err != nil {
		log.Printf("Card PDF generation failed for %s: %v", ticketID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not generate membership card."})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="membership_card_`+ticketID+`.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

// PingController handles GET /_ping, the tiny health check.
func PingController(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
