package middleware

import (
	"net/http"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// DashboardPath is where role-gated routes send callers that are signed in
// but not allowed here.
const DashboardPath = "/api/v1/dashboard"

// RequireRecruiter gates recruiter-only routes. A signed-in caller with the
// wrong role is redirected to the generic dashboard before the handler runs.
// This mirrors the client-side gate and is advisory; ownership checks in the
// repositories are the actual enforcement.
func RequireRecruiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		role, ok := value.(domain.Role)
		if !ok || !role.CanManageMissions() {
			c.Redirect(http.StatusSeeOther, DashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
