package candidateprofile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
)

// MaxCVSize is the client-facing upload limit, checked before any storage
// call is made.
const MaxCVSize = 10 << 20 // 10 MiB

const profileCacheTTL = time.Hour

// FileStorage is the object-storage seam for CV documents.
type FileStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

// AnalysisRequester is the extension point for a real scoring service.
// The default implementation only acknowledges the request; no analysis
// record is written by this flow.
type AnalysisRequester interface {
	Request(ctx context.Context, userID string, profileType string) (status string, err error)
}

// PlaceholderAnalysis acknowledges every request as pending.
// TODO: replace with a client for the scoring service once it exists.
type PlaceholderAnalysis struct{}

func (PlaceholderAnalysis) Request(ctx context.Context, userID, profileType string) (string, error) {
	return "pending", nil
}

type ProfileFormUseCase struct {
	graduateRepo     repository.GraduateProfileRepository
	professionalRepo repository.ProfessionalProfileRepository
	userRepo         repository.UserProfileRepository
	profileCache     repository.ProfileCache
	storage          FileStorage
	analysis         AnalysisRequester
	now              func() time.Time
}

func NewProfileFormUseCase(
	graduateRepo repository.GraduateProfileRepository,
	professionalRepo repository.ProfessionalProfileRepository,
	userRepo repository.UserProfileRepository,
	profileCache repository.ProfileCache,
	storage FileStorage,
	analysis AnalysisRequester,
) *ProfileFormUseCase {
	return &ProfileFormUseCase{
		graduateRepo:     graduateRepo,
		professionalRepo: professionalRepo,
		userRepo:         userRepo,
		profileCache:     profileCache,
		storage:          storage,
		analysis:         analysis,
		now:              time.Now,
	}
}

// GraduateProfileRequest carries the graduate form. SubjectsLiked arrives as
// comma-separated text, the same shape the form field holds.
type GraduateProfileRequest struct {
	EducationLevel     string  `json:"education_level" binding:"required,max=100"`
	Institution        string  `json:"institution" binding:"required,max=200"`
	GraduationYear     int     `json:"graduation_year" binding:"required,min=1950,max=2100"`
	ProgramDescription string  `json:"program_description" binding:"required"`
	SubjectsLiked      string  `json:"subjects_liked" binding:"omitempty"`
	ThesisTitle        *string `json:"thesis_title" binding:"omitempty,max=300"`
	ThesisProblem      *string `json:"thesis_problem" binding:"omitempty"`
	ThesisFavoritePart *string `json:"thesis_favorite_part" binding:"omitempty"`
	AdditionalInfo     *string `json:"additional_info" binding:"omitempty"`
}

// ProfessionalProfileRequest carries the professional form fields; the CV
// file travels separately as multipart content.
type ProfessionalProfileRequest struct {
	YearsExperience          int     `json:"years_experience" form:"years_experience" binding:"min=0,max=50"`
	CurrentPosition          *string `json:"current_position" form:"current_position" binding:"omitempty,max=200"`
	BestSkills               string  `json:"best_skills" form:"best_skills" binding:"required"`
	PassionDescription       *string `json:"passion_description" form:"passion_description" binding:"omitempty"`
	PreferredWorkEnvironment *string `json:"preferred_work_environment" form:"preferred_work_environment" binding:"omitempty"`
	AdditionalInfo           *string `json:"additional_info" form:"additional_info" binding:"omitempty"`
}

// CVFile is an uploaded document as received from the form.
type CVFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// SaveResult reports the saved record and the analysis hand-off state the
// client renders as its "analyzing" phase.
type SaveResult struct {
	Graduate       *domain.GraduateProfile     `json:"graduate,omitempty"`
	Professional   *domain.ProfessionalProfile `json:"professional,omitempty"`
	AnalysisStatus string                      `json:"analysis_status"`
}

// GetGraduate returns the user's graduate record, or nil when none exists
// yet (maybe-single semantics).
func (uc *ProfileFormUseCase) GetGraduate(ctx context.Context, userID string) (*domain.GraduateProfile, error) {
	p, err := uc.graduateRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, nil
	}
	return p, err
}

// GetProfessional returns the user's professional record, or nil when none
// exists yet.
func (uc *ProfileFormUseCase) GetProfessional(ctx context.Context, userID string) (*domain.ProfessionalProfile, error) {
	p, err := uc.professionalRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, nil
	}
	return p, err
}

// SaveGraduate upserts the graduate record, marks the parent profile
// completed, refreshes the cached profile, then hands off to analysis.
// A failure at any step aborts the remaining ones.
func (uc *ProfileFormUseCase) SaveGraduate(ctx context.Context, userID string, req *GraduateProfileRequest) (*SaveResult, error) {
	existing, err := uc.GetGraduate(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &domain.GraduateProfile{
		UserID:             userID,
		EducationLevel:     req.EducationLevel,
		Institution:        req.Institution,
		GraduationYear:     req.GraduationYear,
		ProgramDescription: req.ProgramDescription,
		SubjectsLiked:      domain.ParseKeywords(req.SubjectsLiked),
		ThesisTitle:        req.ThesisTitle,
		ThesisProblem:      req.ThesisProblem,
		ThesisFavoritePart: req.ThesisFavoritePart,
		AdditionalInfo:     req.AdditionalInfo,
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CVURL = existing.CVURL
	}

	if err := uc.graduateRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save graduate profile: %w", err)
	}

	if err := uc.completeProfile(ctx, userID); err != nil {
		return nil, err
	}

	status, err := uc.analysis.Request(ctx, userID, "graduate")
	if err != nil {
		return nil, fmt.Errorf("failed to request analysis: %w", err)
	}

	return &SaveResult{Graduate: profile, AnalysisStatus: status}, nil
}

// SaveProfessional is the professional variant of SaveGraduate, with the CV
// upload step in front. The size guard runs before any storage call; when no
// new file is attached the existing cv_url is preserved.
func (uc *ProfileFormUseCase) SaveProfessional(ctx context.Context, userID string, req *ProfessionalProfileRequest, cv *CVFile) (*SaveResult, error) {
	existing, err := uc.GetProfessional(ctx, userID)
	if err != nil {
		return nil, err
	}

	cvURL := ""
	if existing != nil {
		cvURL = existing.CVURL
	}
	if cv != nil {
		if cv.Size > MaxCVSize {
			return nil, domain.ErrFileTooLarge
		}
		key := uc.cvKey(userID, cv.Name)
		if err := uc.storage.Upload(ctx, key, cv.Data, cv.ContentType); err != nil {
			return nil, fmt.Errorf("failed to upload cv: %w", err)
		}
		cvURL = uc.storage.PublicURL(key)
	}

	profile := &domain.ProfessionalProfile{
		UserID:                   userID,
		YearsExperience:          req.YearsExperience,
		CurrentPosition:          req.CurrentPosition,
		CVURL:                    cvURL,
		BestSkills:               req.BestSkills,
		PassionDescription:       req.PassionDescription,
		PreferredWorkEnvironment: req.PreferredWorkEnvironment,
		AdditionalInfo:           req.AdditionalInfo,
	}
	if existing != nil {
		profile.ID = existing.ID
	}

	if err := uc.professionalRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save professional profile: %w", err)
	}

	if err := uc.completeProfile(ctx, userID); err != nil {
		return nil, err
	}

	status, err := uc.analysis.Request(ctx, userID, "professional")
	if err != nil {
		return nil, fmt.Errorf("failed to request analysis: %w", err)
	}

	return &SaveResult{Professional: profile, AnalysisStatus: status}, nil
}

func (uc *ProfileFormUseCase) completeProfile(ctx context.Context, userID string) error {
	if err := uc.userRepo.SetProfileCompleted(ctx, userID, true); err != nil {
		return fmt.Errorf("failed to mark profile completed: %w", err)
	}
	profile, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to reload profile: %w", err)
	}
	if err := uc.profileCache.Replace(ctx, profile, profileCacheTTL); err != nil {
		return fmt.Errorf("failed to refresh cached profile: %w", err)
	}
	return nil
}

func (uc *ProfileFormUseCase) cvKey(userID, filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s_%d.%s", userID, uc.now().Unix(), ext)
}
