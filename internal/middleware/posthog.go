package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/property_management_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains routes that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware tracks successful authenticated API calls as PostHog events.
// Event names derive from the route template, e.g. "/api/buildings/:id" -> "api_buildings_id".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := PosthogEventName(c.FullPath())
		if eventName == "" {
			return
		}

		// path params are entity IDs; only the method and status are sent
		posthogClient.Enqueue(userID, eventName, map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		})
	}
}

// PosthogEventName turns a route template into an event name.
func PosthogEventName(fullPath string) string {
	name := strings.Trim(fullPath, "/")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(name, "/", "_")
}
