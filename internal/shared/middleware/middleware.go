package middleware

import (
	"net/http"

	"cinepass/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader carries the caller's booking-session identifier. This is
	// cart ownership scoping, not authentication: each client session gets its
	// own cart and nothing else hangs off the id.
	SessionHeader = "X-Session-ID"

	// SessionKey is the gin context key the session id is stored under.
	SessionKey = "session_id"
)

// Session resolves the booking session for the request. A missing header gets
// a freshly minted id; either way the id is echoed back so clients can persist
// it for the rest of the booking flow.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		} else if _, err := uuid.Parse(sessionID); err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid session ID", nil, "session ID must be a UUID")
			c.Abort()
			return
		}

		c.Set(SessionKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// SessionID returns the resolved session id for the request, or empty if the
// Session middleware did not run.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
