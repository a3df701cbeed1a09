package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_Success(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	created := createTestUser(t, ctx, "Alice", "alice@example.com")

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, user.RoleUser, created.Role)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	createTestUser(t, ctx, "Alice", "alice@example.com")

	repo := postgresql.NewUserRepository(db)
	_, err := repo.Create(ctx, user.User{
		Name:         "Other Alice",
		Email:        "Alice@Example.com", // case-insensitive match
		PasswordHash: "x",
		Role:         user.RoleUser,
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	repo := postgresql.NewUserRepository(db)
	_, err := repo.GetByEmail(context.Background(), "notfound@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_ListByRole_SortedByName(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	createTestUser(t, ctx, "Charlie", "charlie@example.com")
	createTestUser(t, ctx, "Alice", "alice@example.com")
	createTestUser(t, ctx, "Bob", "bob@example.com")

	repo := postgresql.NewUserRepository(db)
	users, err := repo.ListByRole(ctx, user.RoleUser)

	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
	assert.Equal(t, "Charlie", users[2].Name)
}

func TestUserRepository_ResetTokenLifecycle(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	alice := createTestUser(t, ctx, "Alice", "alice@example.com")
	repo := postgresql.NewUserRepository(db)

	tokenHash := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	require.NoError(t, repo.SetResetToken(ctx, alice.ID, tokenHash, time.Now().Add(time.Hour)))

	found, err := repo.GetByResetTokenHash(ctx, tokenHash)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	// UpdatePassword consumes the token
	require.NoError(t, repo.UpdatePassword(ctx, alice.ID, "new-hash"))
	_, err = repo.GetByResetTokenHash(ctx, tokenHash)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_ExpiredResetTokenIsInvisible(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	alice := createTestUser(t, ctx, "Alice", "alice@example.com")
	repo := postgresql.NewUserRepository(db)

	tokenHash := "feedfacefeedfacefeedfacefeedfacefeedfacefeedfacefeedfacefeedface"
	require.NoError(t, repo.SetResetToken(ctx, alice.ID, tokenHash, time.Now().Add(-time.Minute)))

	_, err := repo.GetByResetTokenHash(ctx, tokenHash)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
