package handler

import (
	"errors"
	"net/http"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/usecase/mission"
	"github.com/gin-gonic/gin"
)

type MissionHandler struct {
	missionUseCase *mission.MissionUseCase
}

func NewMissionHandler(missionUseCase *mission.MissionUseCase) *MissionHandler {
	return &MissionHandler{missionUseCase: missionUseCase}
}

// Create handles POST /missions.
func (h *MissionHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req mission.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.missionUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		// The storage error message is surfaced verbatim; the client keeps
		// its form state and may retry manually.
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List handles GET /missions, newest first.
func (h *MissionHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	missions, err := h.missionUseCase.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if missions == nil {
		missions = []*domain.Mission{}
	}

	c.JSON(http.StatusOK, gin.H{"missions": missions})
}

// Delete handles DELETE /missions/:id. The 200 response is the client's
// signal to drop the mission from its list; on error nothing was removed.
func (h *MissionHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	missionID := c.Param("id")

	if err := h.missionUseCase.Delete(c.Request.Context(), userID, missionID); err != nil {
		if errors.Is(err, domain.ErrMissionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "mission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "mission deleted"})
}

// Activities handles GET /activities: the catalog ordered by category, for
// the mission form's grouped checkboxes.
func (h *MissionHandler) Activities(c *gin.Context) {
	activities, err := h.missionUseCase.Activities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if activities == nil {
		activities = []*domain.AuditActivity{}
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
