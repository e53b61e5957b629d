package candidates

import (
	"context"
	"fmt"

	"github.com/auditrecrut/backend/internal/domain"
)

// MarkViewed records that the recruiter opened a candidate card. The match
// must belong to one of the recruiter's missions.
func (uc *CandidatesUseCase) MarkViewed(ctx context.Context, recruiterID, matchID string) error {
	if err := uc.authorizeRecruiter(ctx, recruiterID, matchID); err != nil {
		return err
	}
	return uc.matchRepo.SetViewed(ctx, matchID, domain.MatchSideRecruiter)
}

// SetInterested flips the recruiter-side interest flag. The two sides of a
// match track interest independently.
func (uc *CandidatesUseCase) SetInterested(ctx context.Context, recruiterID, matchID string, interested bool) error {
	if err := uc.authorizeRecruiter(ctx, recruiterID, matchID); err != nil {
		return err
	}
	return uc.matchRepo.SetInterested(ctx, matchID, domain.MatchSideRecruiter, interested)
}

func (uc *CandidatesUseCase) authorizeRecruiter(ctx context.Context, recruiterID, matchID string) error {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	missionIDs, err := uc.missionRepo.GetIDsByRecruiter(ctx, recruiterID)
	if err != nil {
		return fmt.Errorf("failed to get mission ids: %w", err)
	}
	for _, id := range missionIDs {
		if id == match.MissionID {
			return nil
		}
	}
	return domain.ErrForbidden
}
