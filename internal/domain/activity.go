package domain

import "time"

// AuditActivity is a catalog entry recruiters attach to missions as tags.
// The catalog is read-only for this service.
type AuditActivity struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Keywords    []string  `json:"keywords" db:"keywords"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
