package domain

import "time"

// UserProfile is the denormalized account record every page works from.
// ProfileCompleted flips to true only after a successful profile form save.
type UserProfile struct {
	ID                 string    `json:"id" db:"id"`
	Role               Role      `json:"role" db:"role"`
	FirstName          string    `json:"first_name" db:"first_name"`
	LastName           string    `json:"last_name" db:"last_name"`
	Email              string    `json:"email" db:"email"`
	Phone              *string   `json:"phone" db:"phone"`
	CompanyName        *string   `json:"company_name" db:"company_name"`
	CompanyDescription *string   `json:"company_description" db:"company_description"`
	ProfileCompleted   bool      `json:"profile_completed" db:"profile_completed"`
	PasswordHash       string    `json:"-" db:"password_hash"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

func (u *UserProfile) FullName() string {
	return u.FirstName + " " + u.LastName
}
