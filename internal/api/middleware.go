package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/domain/policy"
	"github.com/careerforge/jobboard/internal/metrics"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticate verifies the bearer token, resolves the user once and attaches
// the identity to the request context.
func (h *AuthHandler) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized, no token"})
			return
		}

		userID, err := h.auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized, token failed"})
			return
		}

		user, err := h.auth.GetProfile(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized, user not found"})
			return
		}

		c.Set(identityKey, policy.Identity{UserID: user.ID, Role: user.Role})
		c.Next()
	}
}

// RequireRoles gates a route on the authenticated identity's role.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {

		actor := currentIdentity(c)
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			gin.H{"error": "role " + string(actor.Role) + " is not allowed to access this resource"})
	}
}

func currentIdentity(c *gin.Context) policy.Identity {
	value, _ := c.Get(identityKey)
	actor, _ := value.(policy.Identity)
	return actor
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestsCounter.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
