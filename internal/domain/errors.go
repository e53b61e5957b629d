package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyUsed     = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrSessionNotFound      = errors.New("session not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrMissionNotFound      = errors.New("mission not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrAnalysisNotFound     = errors.New("analysis not found")
	ErrActivityNotFound     = errors.New("audit activity not found")
	ErrFileTooLarge         = errors.New("file exceeds the 10 MiB limit")
	ErrForbidden            = errors.New("operation not allowed for this role")
)
