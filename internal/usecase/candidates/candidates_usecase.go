package candidates

import (
	"context"
	"fmt"
	"strings"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
)

// RoleFilterAll disables the role predicate.
const RoleFilterAll = "all"

type CandidatesUseCase struct {
	missionRepo repository.MissionRepository
	matchRepo   repository.MatchRepository
	userRepo    repository.UserProfileRepository
}

func NewCandidatesUseCase(
	missionRepo repository.MissionRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserProfileRepository,
) *CandidatesUseCase {
	return &CandidatesUseCase{
		missionRepo: missionRepo,
		matchRepo:   matchRepo,
		userRepo:    userRepo,
	}
}

// CandidateMatch is one joined row of the candidates view: the candidate
// profile, the match record, and the score carried over verbatim.
type CandidateMatch struct {
	Candidate *domain.UserProfile `json:"candidate"`
	Match     *domain.Match       `json:"match"`
	Score     int                 `json:"score"`
}

// State distinguishes the two empty outcomes: no candidates exist at all
// (guidance: create missions) versus a non-empty set filtered down to zero.
type State string

const (
	StateOK           State = "ok"
	StateNoCandidates State = "no_candidates"
	StateNoResults    State = "no_results"
)

// ListResponse is the candidates page payload.
type ListResponse struct {
	State      State            `json:"state"`
	Candidates []CandidateMatch `json:"candidates"`
	Total      int              `json:"total"`
}

// Aggregate builds the unfiltered snapshot for a recruiter: matches on the
// recruiter's missions ordered by score descending, each joined with its
// candidate profile. A match whose candidate cannot be resolved is dropped
// silently.
func (uc *CandidatesUseCase) Aggregate(ctx context.Context, recruiterID string) ([]CandidateMatch, error) {
	missionIDs, err := uc.missionRepo.GetIDsByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission ids: %w", err)
	}
	if len(missionIDs) == 0 {
		return nil, nil
	}

	matches, err := uc.matchRepo.GetByMissionIDs(ctx, missionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	candidateIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		candidateIDs = append(candidateIDs, m.CandidateID)
	}

	profiles, err := uc.userRepo.GetByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate profiles: %w", err)
	}
	byID := make(map[string]*domain.UserProfile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	var out []CandidateMatch
	for _, m := range matches {
		candidate, ok := byID[m.CandidateID]
		if !ok {
			continue
		}
		out = append(out, CandidateMatch{
			Candidate: candidate,
			Match:     m,
			Score:     m.CompatibilityScore,
		})
	}
	return out, nil
}

// Filter applies the text and role predicates to a snapshot. It is pure:
// it never re-fetches, preserves order, and is idempotent.
func Filter(snapshot []CandidateMatch, query, roleFilter string) []CandidateMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]CandidateMatch, 0, len(snapshot))
	for _, cm := range snapshot {
		if q != "" && !matchesQuery(cm.Candidate, q) {
			continue
		}
		if roleFilter != "" && roleFilter != RoleFilterAll && string(cm.Candidate.Role) != roleFilter {
			continue
		}
		out = append(out, cm)
	}
	return out
}

func matchesQuery(candidate *domain.UserProfile, q string) bool {
	return strings.Contains(strings.ToLower(candidate.FirstName), q) ||
		strings.Contains(strings.ToLower(candidate.LastName), q) ||
		strings.Contains(strings.ToLower(candidate.Email), q)
}

// List aggregates and filters in one call, reporting which empty state
// applies when nothing is returned.
func (uc *CandidatesUseCase) List(ctx context.Context, recruiterID, query, roleFilter string) (*ListResponse, error) {
	snapshot, err := uc.Aggregate(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	if len(snapshot) == 0 {
		return &ListResponse{State: StateNoCandidates, Candidates: []CandidateMatch{}}, nil
	}

	filtered := Filter(snapshot, query, roleFilter)
	state := StateOK
	if len(filtered) == 0 {
		state = StateNoResults
	}
	return &ListResponse{State: state, Candidates: filtered, Total: len(snapshot)}, nil
}
