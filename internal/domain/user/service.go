package user

import "context"

type UserService interface {
	// ListEmployees returns all non-admin accounts, sorted by name (admin)
	ListEmployees(ctx context.Context) ([]PublicUser, error)
}
