package domain

import "time"

// GraduateProfile is the variant detail record for a fresh graduate.
// At most one exists per user; writes go through upsert-by-user-id.
type GraduateProfile struct {
	ID                 string    `json:"id" db:"id"`
	UserID             string    `json:"user_id" db:"user_id"`
	EducationLevel     string    `json:"education_level" db:"education_level"`
	Institution        string    `json:"institution" db:"institution"`
	GraduationYear     int       `json:"graduation_year" db:"graduation_year"`
	ProgramDescription string    `json:"program_description" db:"program_description"`
	SubjectsLiked      []string  `json:"subjects_liked" db:"subjects_liked"`
	ThesisTitle        *string   `json:"thesis_title" db:"thesis_title"`
	ThesisProblem      *string   `json:"thesis_problem" db:"thesis_problem"`
	ThesisFavoritePart *string   `json:"thesis_favorite_part" db:"thesis_favorite_part"`
	AdditionalInfo     *string   `json:"additional_info" db:"additional_info"`
	CVURL              *string   `json:"cv_url" db:"cv_url"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
