package handler

import (
	"errors"
	"net/http"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/usecase/candidates"
	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidatesUseCase *candidates.CandidatesUseCase
}

func NewCandidateHandler(candidatesUseCase *candidates.CandidatesUseCase) *CandidateHandler {
	return &CandidateHandler{candidatesUseCase: candidatesUseCase}
}

// List handles GET /candidates?q=&role=. The response state tells the two
// empty cases apart: no candidates at all versus no results for the search.
func (h *CandidateHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	query := c.Query("q")
	roleFilter := c.DefaultQuery("role", candidates.RoleFilterAll)

	result, err := h.candidatesUseCase.List(c.Request.Context(), userID, query, roleFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// MarkViewed handles POST /candidates/:match_id/viewed.
func (h *CandidateHandler) MarkViewed(c *gin.Context) {
	userID := c.GetString("user_id")
	matchID := c.Param("match_id")

	if err := h.candidatesUseCase.MarkViewed(c.Request.Context(), userID, matchID); err != nil {
		h.writeInterestError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "match marked as viewed"})
}

// InterestRequest carries the recruiter-side interest flag.
type InterestRequest struct {
	Interested bool `json:"interested"`
}

// SetInterest handles POST /candidates/:match_id/interest.
func (h *CandidateHandler) SetInterest(c *gin.Context) {
	userID := c.GetString("user_id")
	matchID := c.Param("match_id")

	var req InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.candidatesUseCase.SetInterested(c.Request.Context(), userID, matchID, req.Interested); err != nil {
		h.writeInterestError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "interest updated"})
}

func (h *CandidateHandler) writeInterestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "match not found"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
