package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verifiedboiy/fanmeetzone/applications/session"
	"github.com/verifiedboiy/fanmeetzone/applications/uploads"
	"github.com/verifiedboiy/fanmeetzone/applications/wizard"
)

// WizardController exposes the session-scoped order wizard steps.
type WizardController struct {
	Svc     *wizard.Service
	Uploads *uploads.Writer
}

// redirectForGuard sends guard violations back to the earliest unmet wizard
// step. Returns false when the error is not a guard error.
func redirectForGuard(c echo.Context, err error) (bool, error) {
	switch {
	case errors.Is(err, wizard.ErrNoCelebrity), errors.Is(err, wizard.ErrNotUnlocked):
		return true, c.Redirect(http.StatusSeeOther, "/celebrity")
	case errors.Is(err, wizard.ErrNoPendingOrder):
		return true, c.Redirect(http.StatusSeeOther, "/client")
	}
	return false, nil
}

// CreateCelebrityController handles POST /celebrity (wizard step 1).
func (wc *WizardController) CreateCelebrityController(c echo.Context) error {
	name := c.FormValue("celeb_name")

	imageURL := ""
	if fh, err := c.FormFile("celeb_image"); err == nil {
		imageURL, err = wc.Uploads.Save(fh)
		if err != nil {
			log.Printf("Celebrity image upload failed: %v", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Image upload failed: " + err.Error()})
		}
	}

	st := session.Load(c)
	celeb := wc.Svc.CreateCelebrity(st, name, imageURL)
	if err := session.Save(c, st); err != nil {
		log.Printf("Session save failed on celebrity creation: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not start wizard session."})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"name":      celeb.Name,
		"image_url": celeb.ImageURL,
		"passcode":  celeb.GenCode,
	})
}

// SubmitPasscodeController handles POST /passcode (wizard step 2).
func (wc *WizardController) SubmitPasscodeController(c echo.Context) error {
	st := session.Load(c)

	err := wc.Svc.SubmitPasscode(st, c.FormValue("code"))
	if err != nil {
		if handled, redirect := redirectForGuard(c, err); handled {
			return redirect
		}
		// Wrong passcode: same step, inline error, session untouched.
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Wrong passcode"})
	}

	if err := session.Save(c, st); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not save wizard session."})
	}
	return c.JSON(http.StatusOK, map[string]any{"unlocked": true})
}

// SubmitClientController handles POST /client (wizard step 3).
func (wc *WizardController) SubmitClientController(c echo.Context) error {
	st := session.Load(c)

	// Guard before the upload: a visitor who never unlocked the step must
	// not be able to write files.
	if err := wc.Svc.CheckIntakeOpen(st); err != nil {
		if handled, redirect := redirectForGuard(c, err); handled {
			return redirect
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	imageURL := ""
	if fh, err := c.FormFile("client_image"); err == nil {
		imageURL, err = wc.Uploads.Save(fh)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Image upload failed: " + err.Error()})
		}
	}

	o, err := wc.Svc.SubmitClientInfo(st, wizard.ClientParams{
		ImageURL: imageURL,
		FullName: c.FormValue("full_name"),
		Email:    c.FormValue("email"),
		Address:  c.FormValue("address"),
		City:     c.FormValue("city"),
		State:    c.FormValue("state"),
		Zip:      c.FormValue("zip"),
		Country:  c.FormValue("country"),
		DOB:      c.FormValue("dob"),
		Package:  c.FormValue("package"),
	})
	if err != nil {
		if handled, redirect := redirectForGuard(c, err); handled {
			return redirect
		}
		log.Printf("Client submission failed: %v", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := session.Save(c, st); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not save wizard session."})
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"ticket_id": o.TicketID,
		"package":   o.Client.Package,
	})
}

// CheckoutController handles GET /checkout (wizard step 4, read-only).
func (wc *WizardController) CheckoutController(c echo.Context) error {
	st := session.Load(c)

	summary, err := wc.Svc.Checkout(st)
	if err != nil {
		if handled, redirect := redirectForGuard(c, err); handled {
			return redirect
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, summary)
}

// PaymentOptionsController handles GET /payment/options (wizard step 5).
func (wc *WizardController) PaymentOptionsController(c echo.Context) error {
	st := session.Load(c)

	methods, err := wc.Svc.PaymentOptions(st)
	if err != nil {
		if handled, redirect := redirectForGuard(c, err); handled {
			return redirect
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"ticket_id": st.PendingOrder.TicketID,
		"methods":   methods,
	})
}
