package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrInvalidResetToken       = errors.New("invalid or expired reset token")
	ErrInvalidInviteCode       = errors.New("invalid admin invite code")
	ErrInviteCodeNotConfigured = errors.New("admin invite not configured")
)
