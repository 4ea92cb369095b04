package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verifiedboiy/fanmeetzone/applications/admin"
)

// AdminController exposes login and the moderation actions over the record
// store.
type AdminController struct {
	Auth *admin.Auth
	Mod  *admin.Moderator
}

type loginRequest struct {
	Password string `json:"password"`
}

// LoginController handles POST /admin/login.
func (ac *AdminController) LoginController(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	var req loginRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	token, err := ac.Auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrBadCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials."})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Login failed: " + err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// ListRecordsController handles GET /admin/records (newest first).
func (ac *AdminController) ListRecordsController(c echo.Context) error {
	return c.JSON(http.StatusOK, ac.Mod.ListRecords())
}

// ModerateController handles POST /admin/verify/:ticket/:action with action
// approve or reject. Unknown tickets are a silent no-op, matching the
// store's moderation semantics.
func (ac *AdminController) ModerateController(c echo.Context) error {
	ticket := c.Param("ticket")
	action := c.Param("action")

	var err error
	switch action {
	case "approve":
		err = ac.Mod.Verify(ticket)
	case "reject":
		err = ac.Mod.Reject(ticket)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown action: " + action})
	}
	if err != nil {
		log.Printf("Moderation %s failed for %s: %v", action, ticket, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Moderation failed: " + err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"ticket": ticket, "action": action})
}

// DeleteRecordController handles DELETE /admin/records/:ticket.
func (ac *AdminController) DeleteRecordController(c echo.Context) error {
	ticket := c.Param("ticket")

	if err := ac.Mod.Delete(ticket); err != nil {
		log.Printf("Delete failed for %s: %v", ticket, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete record: " + err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
