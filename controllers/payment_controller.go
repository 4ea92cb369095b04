package controllers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/applications/payment"
	"github.com/verifiedboiy/fanmeetzone/applications/session"
	"github.com/verifiedboiy/fanmeetzone/applications/uploads"
	"github.com/verifiedboiy/fanmeetzone/applications/wizard"
)

// PaymentController exposes the three terminal payment branches. Each one
// finalizes the pending order at most once; failures preserve the session so
// the visitor can resubmit.
type PaymentController struct {
	Svc     *wizard.Service
	Uploads *uploads.Writer
}

// chargeFailure maps payment errors onto the error taxonomy: missing token
// and declines are structured client-visible failures, anything else is the
// gateway being unreachable.
func chargeFailure(c echo.Context, err error) error {
	var decline *payment.DeclineError
	switch {
	case errors.Is(err, payment.ErrMissingToken):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &decline):
		return c.JSON(http.StatusPaymentRequired, map[string]string{"error": decline.Error()})
	}
	log.Printf("Gateway failure: %v", err)
	return c.JSON(http.StatusBadGateway, map[string]string{"error": "Payment provider unavailable, please retry."})
}

func finalizedResponse(c echo.Context, o *order.Order) error {
	resp := map[string]any{
		"ticket_id": o.TicketID,
		"paid":      o.Paid,
		"status":    o.Status,
	}
	if o.PaymentInfo != nil && o.PaymentInfo.PaymentID != "" {
		resp["confirmation"] = o.PaymentInfo.PaymentID
	}
	return c.JSON(http.StatusCreated, resp)
}

// PayCardController handles POST /payment/card.
func (pc *PaymentController) PayCardController(c echo.Context) error {
	st := session.Load(c)

	o, err := pc.Svc.PayCard(c.Request().Context(), st, c.FormValue("payment_token"))
	if err != nil {
		if handled, redirect := redirectForGuard(c, err); handled {
			return redirect
		}
		return chargeFailure(c, err)
	}

	if err := session.Save(c, st); err != nil {
		log.Printf("Session clear failed after card payment for %s: %v", o.TicketID, err)
	}
	return finalizedResponse(c, o)
}

// PayBankController handles POST /payment/bank. Two sub-paths: a tokenized
// ACH charge, or a manual proof-of-transfer upload. Only one is taken per
// order.
func (pc *PaymentController) PayBankController(c echo.Context) error {
	st := session.Load(c)

	var (
		o   *order.Order
		err error
	)
	if token := c.FormValue("payment_token"); token != "" {
		o, err = pc.Svc.PayBankACH(c.Request().Context(), st, token)
		if err != nil {
			if handled, redirect := redirectForGuard(c, err); handled {
				return redirect
			}
			return chargeFailure(c, err)
		}
	} else {
		// No token means the manual-transfer path. A missing proof file is
		// allowed; the record simply carries no proof URL.
		var fh *multipart.FileHeader
		if f, fhErr := c.FormFile("bank_proof"); fhErr == nil {
			fh = f
		}
		proofURL, upErr := pc.Uploads.Save(fh)
		if upErr != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Proof upload failed: " + upErr.Error()})
		}
		o, err = pc.Svc.PayBankProof(st, proofURL)
		if err != nil {
			if handled, redirect := redirectForGuard(c, err); handled {
				return redirect
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	if err := session.Save(c, st); err != nil {
		log.Printf("Session clear failed after bank payment for %s: %v", o.TicketID, err)
	}
	return finalizedResponse(c, o)
}

// PayGiftController handles POST /payment/gift.
func (pc *PaymentController) PayGiftController(c echo.Context) error {
	st := session.Load(c)
	if st.PendingOrder == nil {
		return c.Redirect(http.StatusSeeOther, "/client")
	}

	// A missing proof image is allowed; the admin just has less to look at.
	var fh *multipart.FileHeader
	if f, fhErr := c.FormFile("gift_proof"); fhErr == nil {
		fh = f
	}
	proofURL, err := pc.Uploads.Save(fh)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Proof upload failed: " + err.Error()})
	}

	o, err := pc.Svc.PayGiftProof(st, proofURL)
	if err != nil {
		if handled, redirect := redirectForGuard(c, err); handled {
			return redirect
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if err := session.Save(c, st); err != nil {
		log.Printf("Session clear failed after gift payment for %s: %v", o.TicketID, err)
	}
	return finalizedResponse(c, o)
}
