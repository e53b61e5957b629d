package domain

import "time"

// ProfessionalProfile is the variant detail record for an experienced hire.
// CVURL points at the uploaded document in object storage.
type ProfessionalProfile struct {
	ID                       string    `json:"id" db:"id"`
	UserID                   string    `json:"user_id" db:"user_id"`
	YearsExperience          int       `json:"years_experience" db:"years_experience"`
	CurrentPosition          *string   `json:"current_position" db:"current_position"`
	CVURL                    string    `json:"cv_url" db:"cv_url"`
	BestSkills               string    `json:"best_skills" db:"best_skills"`
	PassionDescription       *string   `json:"passion_description" db:"passion_description"`
	PreferredWorkEnvironment *string   `json:"preferred_work_environment" db:"preferred_work_environment"`
	AdditionalInfo           *string   `json:"additional_info" db:"additional_info"`
	CreatedAt                time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time `json:"updated_at" db:"updated_at"`
}
