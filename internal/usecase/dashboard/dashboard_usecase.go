package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
)

type DashboardUseCase struct {
	userRepo     repository.UserProfileRepository
	missionRepo  repository.MissionRepository
	matchRepo    repository.MatchRepository
	analysisRepo repository.AnalysisRepository
}

func NewDashboardUseCase(
	userRepo repository.UserProfileRepository,
	missionRepo repository.MissionRepository,
	matchRepo repository.MatchRepository,
	analysisRepo repository.AnalysisRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:     userRepo,
		missionRepo:  missionRepo,
		matchRepo:    matchRepo,
		analysisRepo: analysisRepo,
	}
}

// Variant names the dashboard rendered for a role. Exactly one is selected;
// the role switch is exhaustive so no role can fall through to nothing.
type Variant string

const (
	VariantCandidate Variant = "candidate"
	VariantRecruiter Variant = "recruiter"
	VariantAdmin     Variant = "admin"
)

// CandidateStats backs the candidate dashboard cards.
type CandidateStats struct {
	Matches          int  `json:"matches"`
	Applications     int  `json:"applications"`
	ProfileScore     int  `json:"profile_score"`
	ProfileCompleted bool `json:"profile_completed"`
}

// RecruiterStats backs the recruiter dashboard cards.
type RecruiterStats struct {
	Missions   int `json:"missions"`
	Candidates int `json:"candidates"`
}

// AdminStats backs the admin dashboard cards.
type AdminStats struct {
	Users    int `json:"users"`
	Missions int `json:"missions"`
	Matches  int `json:"matches"`
	Analyses int `json:"analyses"`
}

// View is the composed dashboard: one variant, one populated stat block.
type View struct {
	Variant   Variant         `json:"variant"`
	Candidate *CandidateStats `json:"candidate,omitempty"`
	Recruiter *RecruiterStats `json:"recruiter,omitempty"`
	Admin     *AdminStats     `json:"admin,omitempty"`
}

// Compose builds the dashboard view for the profile's role.
func (uc *DashboardUseCase) Compose(ctx context.Context, profile *domain.UserProfile) (*View, error) {
	switch profile.Role {
	case domain.RoleCandidateGraduate, domain.RoleCandidateProfessional:
		stats, err := uc.candidateStats(ctx, profile)
		if err != nil {
			return nil, err
		}
		return &View{Variant: VariantCandidate, Candidate: stats}, nil

	case domain.RoleRecruiter:
		stats, err := uc.recruiterStats(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
		return &View{Variant: VariantRecruiter, Recruiter: stats}, nil

	case domain.RoleAdmin:
		stats, err := uc.adminStats(ctx)
		if err != nil {
			return nil, err
		}
		return &View{Variant: VariantAdmin, Admin: stats}, nil
	}

	return nil, fmt.Errorf("unknown role %q", profile.Role)
}

func (uc *DashboardUseCase) candidateStats(ctx context.Context, profile *domain.UserProfile) (*CandidateStats, error) {
	matches, err := uc.matchRepo.CountByCandidate(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}

	// A missing analysis reads as score 0, not as an error.
	score := 0
	analysis, err := uc.analysisRepo.GetByUserID(ctx, profile.ID)
	if err != nil && !errors.Is(err, domain.ErrAnalysisNotFound) {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	if analysis != nil {
		score = analysis.OverallScore
	}

	return &CandidateStats{
		Matches:          matches,
		ProfileScore:     score,
		ProfileCompleted: profile.ProfileCompleted,
	}, nil
}

func (uc *DashboardUseCase) recruiterStats(ctx context.Context, recruiterID string) (*RecruiterStats, error) {
	missions, err := uc.missionRepo.CountByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to count missions: %w", err)
	}

	missionIDs, err := uc.missionRepo.GetIDsByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission ids: %w", err)
	}

	candidates := 0
	if len(missionIDs) > 0 {
		candidates, err = uc.matchRepo.CountByMissionIDs(ctx, missionIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to count matched candidates: %w", err)
		}
	}

	return &RecruiterStats{Missions: missions, Candidates: candidates}, nil
}

func (uc *DashboardUseCase) adminStats(ctx context.Context) (*AdminStats, error) {
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	missions, err := uc.missionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count missions: %w", err)
	}
	matches, err := uc.matchRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}
	analyses, err := uc.analysisRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses: %w", err)
	}
	return &AdminStats{Users: users, Missions: missions, Matches: matches, Analyses: analyses}, nil
}
