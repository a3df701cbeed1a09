package user

import (
	"context"
	"fmt"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
)

type UserServiceImpl struct {
	users user.Repository
}

func NewUserService(users user.Repository) user.UserService {
	return &UserServiceImpl{users: users}
}

// ListEmployees implements user.UserService.
func (s *UserServiceImpl) ListEmployees(ctx context.Context) ([]user.PublicUser, error) {
	employees, err := s.users.ListByRole(ctx, user.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	public := make([]user.PublicUser, 0, len(employees))
	for _, employee := range employees {
		public = append(public, user.NewPublicUser(employee))
	}

	return public, nil
}
