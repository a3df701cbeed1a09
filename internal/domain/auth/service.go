package auth

import (
	"context"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
)

type AuthService interface {
	// Signup registers a new account; the admin role requires the invite code
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)

	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error

	// ForgotPassword issues a reset token and mails the reset link
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error

	// ResetPassword consumes a reset token and replaces the password
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error

	// Me returns the authenticated caller's profile
	Me(ctx context.Context) (user.PublicUser, error)
}
