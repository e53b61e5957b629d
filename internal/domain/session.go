package domain

import "time"

// Session is the server-side record of an issued access token, keyed by the
// token's JWT ID. Logout deletes it, which invalidates the token early.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
