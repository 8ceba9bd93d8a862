package handlers

import (
	"net/http"
	"strconv"
	"time"

	"dairy/middleware"
	"dairy/models"
	"dairy/utils"

	"github.com/gin-gonic/gin"
)

// requireSession fetches the session set by middleware.SessionMiddleware and
// writes a 401 when it is absent.
func requireSession(c *gin.Context) (models.Session, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing account", "X-Account-ID header is required")
		return models.Session{}, false
	}
	return session, true
}

// shiftFrom parses raw, falling back to the session's preferred shift when raw is empty.
func shiftFrom(session models.Session, raw string) (models.Shift, error) {
	if raw == "" {
		if session.Shift.Valid() {
			return session.Shift, nil
		}
		return "", utils.NewValidationError("shift is required")
	}
	shift, ok := models.ParseShift(raw)
	if !ok {
		return "", utils.NewValidationError("invalid shift %q", raw)
	}
	return shift, nil
}

// monthQuery reads month and year from the query string. Missing values
// default to the current month.
func monthQuery(c *gin.Context) (int, int, error) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, utils.NewValidationError("invalid month %q", raw)
		}
		month = v
	}
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, utils.NewValidationError("invalid year %q", raw)
		}
		year = v
	}
	return month, year, nil
}
