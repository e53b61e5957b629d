package mission

import (
	"context"
	"fmt"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
)

type MissionUseCase struct {
	missionRepo  repository.MissionRepository
	activityRepo repository.ActivityRepository
}

func NewMissionUseCase(
	missionRepo repository.MissionRepository,
	activityRepo repository.ActivityRepository,
) *MissionUseCase {
	return &MissionUseCase{
		missionRepo:  missionRepo,
		activityRepo: activityRepo,
	}
}

// CreateMissionRequest carries the new-mission form. Keywords arrive as one
// comma-separated string, exactly as typed.
type CreateMissionRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description" binding:"required"`
	Requirements *string  `json:"requirements" binding:"omitempty"`
	Activities   []string `json:"activities" binding:"omitempty,dive,uuid"`
	Keywords     string   `json:"keywords" binding:"omitempty"`
	Location     *string  `json:"location" binding:"omitempty,max=200"`
	ContractType *string  `json:"contract_type" binding:"omitempty,max=100"`
	SalaryRange  *string  `json:"salary_range" binding:"omitempty,max=100"`
}

// Create publishes a mission for the recruiter. is_active is always true on
// creation; there is no draft state.
func (uc *MissionUseCase) Create(ctx context.Context, recruiterID string, req *CreateMissionRequest) (*domain.Mission, error) {
	if len(req.Activities) > 0 {
		ok, err := uc.activityRepo.AllExist(ctx, req.Activities)
		if err != nil {
			return nil, fmt.Errorf("failed to validate activities: %w", err)
		}
		if !ok {
			return nil, domain.ErrActivityNotFound
		}
	}

	mission := &domain.Mission{
		RecruiterID:  recruiterID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Activities:   req.Activities,
		Keywords:     domain.ParseKeywords(req.Keywords),
		Location:     req.Location,
		ContractType: req.ContractType,
		SalaryRange:  req.SalaryRange,
		IsActive:     true,
	}

	if err := uc.missionRepo.Create(ctx, mission); err != nil {
		return nil, err
	}
	return mission, nil
}

// List returns the recruiter's missions newest-first. No pagination; the
// result set is assumed to fit in memory.
func (uc *MissionUseCase) List(ctx context.Context, recruiterID string) ([]*domain.Mission, error) {
	return uc.missionRepo.GetByRecruiter(ctx, recruiterID)
}

// Delete hard-deletes one of the recruiter's own missions. The caller only
// drops the mission from its view after this returns nil.
func (uc *MissionUseCase) Delete(ctx context.Context, recruiterID, missionID string) error {
	return uc.missionRepo.Delete(ctx, missionID, recruiterID)
}

// Activities returns the audit activity catalog grouped-ready (ordered by
// category) for the mission form.
func (uc *MissionUseCase) Activities(ctx context.Context) ([]*domain.AuditActivity, error) {
	return uc.activityRepo.List(ctx)
}
