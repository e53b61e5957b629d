package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/usecase/candidateprofile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileFormUseCase *candidateprofile.ProfileFormUseCase
}

func NewProfileHandler(profileFormUseCase *candidateprofile.ProfileFormUseCase) *ProfileHandler {
	return &ProfileHandler{profileFormUseCase: profileFormUseCase}
}

// GetGraduate handles GET /profile/graduate. A missing record is a normal
// outcome: 200 with a null profile, the form just starts empty.
func (h *ProfileHandler) GetGraduate(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.profileFormUseCase.GetGraduate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// SaveGraduate handles PUT /profile/graduate.
func (h *ProfileHandler) SaveGraduate(c *gin.Context) {
	userID := c.GetString("user_id")

	var req candidateprofile.GraduateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.profileFormUseCase.SaveGraduate(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProfessional handles GET /profile/professional.
func (h *ProfileHandler) GetProfessional(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.profileFormUseCase.GetProfessional(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// SaveProfessional handles PUT /profile/professional as multipart form data
// with an optional cv_file part. An oversized file is rejected before any
// storage call; the file body is not even read in that case.
func (h *ProfileHandler) SaveProfessional(c *gin.Context) {
	userID := c.GetString("user_id")

	var req candidateprofile.ProfessionalProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var cv *candidateprofile.CVFile
	if header, err := c.FormFile("cv_file"); err == nil {
		cv = &candidateprofile.CVFile{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
		}
		if header.Size <= candidateprofile.MaxCVSize {
			file, err := header.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read uploaded file"})
				return
			}
			defer file.Close()
			data, err := io.ReadAll(file)
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read uploaded file"})
				return
			}
			cv.Data = data
		}
	}

	result, err := h.profileFormUseCase.SaveProfessional(c.Request.Context(), userID, &req, cv)
	if err != nil {
		if errors.Is(err, domain.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
