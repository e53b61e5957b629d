package dashboard

import (
	"context"
	"testing"

	"github.com/auditrecrut/backend/internal/domain"
)

type fakeUserRepo struct {
	total int
}

func (f *fakeUserRepo) Create(ctx context.Context, profile *domain.UserProfile) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.UserProfile, error) {
	return nil, nil
}

func (f *fakeUserRepo) SetProfileCompleted(ctx context.Context, userID string, completed bool) error {
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) { return f.total, nil }

type fakeMissionRepo struct {
	idsByRecruiter map[string][]string
	total          int
}

func (f *fakeMissionRepo) Create(ctx context.Context, mission *domain.Mission) error { return nil }

func (f *fakeMissionRepo) GetByRecruiter(ctx context.Context, recruiterID string) ([]*domain.Mission, error) {
	return nil, nil
}

func (f *fakeMissionRepo) GetIDsByRecruiter(ctx context.Context, recruiterID string) ([]string, error) {
	return f.idsByRecruiter[recruiterID], nil
}

func (f *fakeMissionRepo) Delete(ctx context.Context, id, recruiterID string) error { return nil }

func (f *fakeMissionRepo) CountByRecruiter(ctx context.Context, recruiterID string) (int, error) {
	return len(f.idsByRecruiter[recruiterID]), nil
}

func (f *fakeMissionRepo) Count(ctx context.Context) (int, error) { return f.total, nil }

type fakeMatchRepo struct {
	byCandidate map[string]int
	byMission   map[string]int
	total       int
}

func (f *fakeMatchRepo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	return nil, domain.ErrMatchNotFound
}

func (f *fakeMatchRepo) GetByMissionIDs(ctx context.Context, missionIDs []string) ([]*domain.Match, error) {
	return nil, nil
}

func (f *fakeMatchRepo) CountByCandidate(ctx context.Context, candidateID string) (int, error) {
	return f.byCandidate[candidateID], nil
}

func (f *fakeMatchRepo) CountByMissionIDs(ctx context.Context, missionIDs []string) (int, error) {
	total := 0
	for _, id := range missionIDs {
		total += f.byMission[id]
	}
	return total, nil
}

func (f *fakeMatchRepo) Count(ctx context.Context) (int, error) { return f.total, nil }

func (f *fakeMatchRepo) SetViewed(ctx context.Context, id string, side domain.MatchSide) error {
	return nil
}

func (f *fakeMatchRepo) SetInterested(ctx context.Context, id string, side domain.MatchSide, interested bool) error {
	return nil
}

type fakeAnalysisRepo struct {
	byUser map[string]*domain.ProfileAnalysis
	total  int
}

func (f *fakeAnalysisRepo) GetByUserID(ctx context.Context, userID string) (*domain.ProfileAnalysis, error) {
	a, ok := f.byUser[userID]
	if !ok {
		return nil, domain.ErrAnalysisNotFound
	}
	return a, nil
}

func (f *fakeAnalysisRepo) Count(ctx context.Context) (int, error) { return f.total, nil }

func TestComposeSelectsVariantByRole(t *testing.T) {
	uc := NewDashboardUseCase(
		&fakeUserRepo{total: 12},
		&fakeMissionRepo{idsByRecruiter: map[string][]string{"rec-1": {"mis-1"}}, total: 5},
		&fakeMatchRepo{byMission: map[string]int{"mis-1": 3}, total: 9},
		&fakeAnalysisRepo{total: 4},
	)

	tests := []struct {
		role domain.Role
		want Variant
	}{
		{domain.RoleCandidateGraduate, VariantCandidate},
		{domain.RoleCandidateProfessional, VariantCandidate},
		{domain.RoleRecruiter, VariantRecruiter},
		{domain.RoleAdmin, VariantAdmin},
	}

	for _, tt := range tests {
		view, err := uc.Compose(context.Background(), &domain.UserProfile{ID: "rec-1", Role: tt.role})
		if err != nil {
			t.Fatalf("Compose(%s) returned error: %v", tt.role, err)
		}
		if view.Variant != tt.want {
			t.Errorf("Compose(%s) variant = %s, want %s", tt.role, view.Variant, tt.want)
		}
	}
}

func TestComposeRejectsUnknownRole(t *testing.T) {
	uc := NewDashboardUseCase(&fakeUserRepo{}, &fakeMissionRepo{}, &fakeMatchRepo{}, &fakeAnalysisRepo{})

	if _, err := uc.Compose(context.Background(), &domain.UserProfile{Role: "intern"}); err == nil {
		t.Fatal("unknown role must not fall through to a variant")
	}
}

func TestCandidateStatsMissingAnalysisReadsAsZero(t *testing.T) {
	uc := NewDashboardUseCase(
		&fakeUserRepo{},
		&fakeMissionRepo{},
		&fakeMatchRepo{byCandidate: map[string]int{"cand-1": 2}},
		&fakeAnalysisRepo{},
	)

	view, err := uc.Compose(context.Background(), &domain.UserProfile{
		ID:               "cand-1",
		Role:             domain.RoleCandidateGraduate,
		ProfileCompleted: true,
	})
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if view.Candidate == nil {
		t.Fatal("candidate stats missing")
	}
	if view.Candidate.ProfileScore != 0 {
		t.Errorf("score = %d, want 0 when no analysis exists", view.Candidate.ProfileScore)
	}
	if view.Candidate.Matches != 2 {
		t.Errorf("matches = %d, want 2", view.Candidate.Matches)
	}
	if !view.Candidate.ProfileCompleted {
		t.Errorf("profile_completed not carried over")
	}
}

func TestRecruiterStatsWithoutMissions(t *testing.T) {
	uc := NewDashboardUseCase(
		&fakeUserRepo{},
		&fakeMissionRepo{idsByRecruiter: map[string][]string{}},
		&fakeMatchRepo{},
		&fakeAnalysisRepo{},
	)

	view, err := uc.Compose(context.Background(), &domain.UserProfile{ID: "rec-1", Role: domain.RoleRecruiter})
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if view.Recruiter.Missions != 0 || view.Recruiter.Candidates != 0 {
		t.Errorf("stats = %+v, want zeros with no missions", view.Recruiter)
	}
}

func TestAdminStats(t *testing.T) {
	uc := NewDashboardUseCase(
		&fakeUserRepo{total: 12},
		&fakeMissionRepo{total: 5},
		&fakeMatchRepo{total: 9},
		&fakeAnalysisRepo{total: 4},
	)

	view, err := uc.Compose(context.Background(), &domain.UserProfile{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	want := AdminStats{Users: 12, Missions: 5, Matches: 9, Analyses: 4}
	if *view.Admin != want {
		t.Errorf("admin stats = %+v, want %+v", *view.Admin, want)
	}
}
