package user

import (
	"context"
	"time"
)

// Repository defines data access for users.
type Repository interface {
	// Create inserts a user. A duplicate email returns ErrEmailExists.
	Create(ctx context.Context, u User) (User, error)

	// GetByID returns ErrUserNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail returns ErrUserNotFound when no user has that email.
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByRole returns users with the given role, sorted by name ascending.
	ListByRole(ctx context.Context, role Role) ([]User, error)

	// SetResetToken stores the hashed reset token and its expiry.
	SetResetToken(ctx context.Context, id string, tokenHash string, expiresAt time.Time) error

	// GetByResetTokenHash returns the user holding an unexpired reset token.
	GetByResetTokenHash(ctx context.Context, tokenHash string) (User, error)

	// UpdatePassword replaces the password hash and clears any reset token.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
