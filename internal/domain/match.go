package domain

import "time"

// Match links one candidate to one mission with a compatibility score in
// the 0-100 range. Scoring happens outside this service; the record is
// read-mostly here, except for the per-side viewed/interested flags.
type Match struct {
	ID                  string    `json:"id" db:"id"`
	CandidateID         string    `json:"candidate_id" db:"candidate_id"`
	MissionID           string    `json:"mission_id" db:"mission_id"`
	CompatibilityScore  int       `json:"compatibility_score" db:"compatibility_score"`
	MatchReason         *string   `json:"match_reason" db:"match_reason"`
	RecruiterViewed     bool      `json:"recruiter_viewed" db:"recruiter_viewed"`
	CandidateViewed     bool      `json:"candidate_viewed" db:"candidate_viewed"`
	RecruiterInterested bool      `json:"recruiter_interested" db:"recruiter_interested"`
	CandidateInterested bool      `json:"candidate_interested" db:"candidate_interested"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// MatchSide identifies which party of a match is acting on it.
type MatchSide string

const (
	MatchSideRecruiter MatchSide = "recruiter"
	MatchSideCandidate MatchSide = "candidate"
)
