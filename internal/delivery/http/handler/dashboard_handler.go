package handler

import (
	"net/http"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/usecase/auth"
	"github.com/auditrecrut/backend/internal/usecase/dashboard"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	authUseCase      *auth.AuthUseCase
	dashboardUseCase *dashboard.DashboardUseCase
}

func NewDashboardHandler(authUseCase *auth.AuthUseCase, dashboardUseCase *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		authUseCase:      authUseCase,
		dashboardUseCase: dashboardUseCase,
	}
}

// GetDashboard handles GET /dashboard. The variant is chosen by the
// caller's role; exactly one stat block is populated.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	profile, err := h.authUseCase.CurrentProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get profile"})
		return
	}

	view, err := h.dashboardUseCase.Compose(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetNavigation handles GET /dashboard/navigation.
func (h *DashboardHandler) GetNavigation(c *gin.Context) {
	value, exists := c.Get("role")
	role, ok := value.(domain.Role)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": dashboard.Navigation(role)})
}
