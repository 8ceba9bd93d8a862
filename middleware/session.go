package middleware

import (
	"net/http"
	"strings"

	"dairy/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// SessionKey is the gin context key holding the request's models.Session.
	SessionKey = "session"

	HeaderAccountID = "X-Account-ID"
	HeaderShift     = "X-Shift"
)

// SessionMiddleware builds the request session from the X-Account-ID header,
// falling back to the userId query parameter older clients send.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := strings.TrimSpace(c.GetHeader(HeaderAccountID))
		if accountID == "" {
			accountID = strings.TrimSpace(c.Query("userId"))
		}
		if accountID == "" {
			zap.L().Debug("Request without account id", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing account: X-Account-ID"})
			return
		}

		session := models.Session{AccountID: accountID}
		if raw := c.GetHeader(HeaderShift); raw != "" {
			shift, ok := models.ParseShift(raw)
			if !ok {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid shift header", "details": raw})
				return
			}
			session.Shift = shift
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// GetSession returns the session stored by SessionMiddleware.
func GetSession(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return models.Session{}, false
	}
	session, ok := v.(models.Session)
	return session, ok
}
