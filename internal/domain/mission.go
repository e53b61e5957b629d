package domain

import (
	"strings"
	"time"
)

// Mission is a job posting owned by exactly one recruiter.
type Mission struct {
	ID           string    `json:"id" db:"id"`
	RecruiterID  string    `json:"recruiter_id" db:"recruiter_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Requirements *string   `json:"requirements" db:"requirements"`
	Activities   []string  `json:"activities" db:"activities"`
	Keywords     []string  `json:"keywords" db:"keywords"`
	Location     *string   `json:"location" db:"location"`
	ContractType *string   `json:"contract_type" db:"contract_type"`
	SalaryRange  *string   `json:"salary_range" db:"salary_range"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ParseKeywords splits a comma-separated input into trimmed, non-empty
// segments. Order is preserved and duplicates are kept.
func ParseKeywords(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinKeywords renders a keyword list back into form-field text. The round
// trip through ParseKeywords is lossy when an element itself contains a
// comma; callers accept that.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}
