package domain

import "time"

// ProfileAnalysis is the scored analysis of a candidate profile. It is
// produced by an external scoring service; nothing in this service computes
// OverallScore.
type ProfileAnalysis struct {
	ID                    string    `json:"id" db:"id"`
	UserID                string    `json:"user_id" db:"user_id"`
	ProfileType           string    `json:"profile_type" db:"profile_type"`
	ProfileDescription    *string   `json:"profile_description" db:"profile_description"`
	IdentifiedStrengths   []string  `json:"identified_strengths" db:"identified_strengths"`
	RecommendedActivities []string  `json:"recommended_activities" db:"recommended_activities"`
	OverallScore          int       `json:"overall_score" db:"overall_score"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}
