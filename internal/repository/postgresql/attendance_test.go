package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/attendance"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/setting"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestUser(t *testing.T, ctx context.Context, name, email string) user.User {
	t.Helper()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	created, err := postgresql.NewUserRepository(testDB).Create(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         user.RoleUser,
	})
	require.NoError(t, err)
	return created
}

func testRecord(userID, userName, dateKey string) attendance.Attendance {
	zone := "Asia/Jakarta"
	return attendance.Attendance{
		DateKey:       dateKey,
		UserID:        userID,
		UserName:      userName,
		CapturedAt:    time.Now().UTC(),
		Status:        attendance.StatusOnTime,
		LocationLabel: "Office",
		Timezone:      &zone,
	}
}

func TestAttendanceRepository_Create_Success(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	alice := createTestUser(t, ctx, "Alice", "alice@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	created, err := repo.Create(ctx, testRecord(alice.ID, "Alice", "2024-03-04"))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-03-04", created.DateKey)
	assert.Equal(t, attendance.StatusOnTime, created.Status)
	require.NotNil(t, created.Timezone)
	assert.Equal(t, "Asia/Jakarta", *created.Timezone)
}

func TestAttendanceRepository_Create_DuplicateDay(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	alice := createTestUser(t, ctx, "Alice", "alice@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	_, err := repo.Create(ctx, testRecord(alice.ID, "Alice", "2024-03-04"))
	require.NoError(t, err)

	// The unique constraint on (user_id, date_key) rejects the second insert
	_, err = repo.Create(ctx, testRecord(alice.ID, "Alice", "2024-03-04"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// A different day is fine
	_, err = repo.Create(ctx, testRecord(alice.ID, "Alice", "2024-03-05"))
	assert.NoError(t, err)
}

func TestAttendanceRepository_UpdateFlag_SetAndClear(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	alice := createTestUser(t, ctx, "Alice", "alice@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	created, err := repo.Create(ctx, testRecord(alice.ID, "Alice", "2024-03-04"))
	require.NoError(t, err)

	comment := "photo looks off"
	flagged, err := repo.UpdateFlag(ctx, created.ID, &comment)
	require.NoError(t, err)
	require.NotNil(t, flagged.FlagComment)
	assert.Equal(t, comment, *flagged.FlagComment)
	assert.NotNil(t, flagged.FlaggedAt)

	cleared, err := repo.UpdateFlag(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.FlagComment)
	assert.Nil(t, cleared.FlaggedAt)
}

func TestAttendanceRepository_ListByDateRange_Order(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	alice := createTestUser(t, ctx, "Alice", "alice@example.com")
	bob := createTestUser(t, ctx, "Bob", "bob@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	for _, record := range []attendance.Attendance{
		testRecord(bob.ID, "Bob", "2024-03-05"),
		testRecord(alice.ID, "Alice", "2024-03-05"),
		testRecord(bob.ID, "Bob", "2024-03-04"),
	} {
		_, err := repo.Create(ctx, record)
		require.NoError(t, err)
	}

	records, err := repo.ListByDateRange(ctx, "2024-03-04", "2024-03-05")
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Sorted by day, then by user name within the day
	assert.Equal(t, "2024-03-04", records[0].DateKey)
	assert.Equal(t, "Alice", records[1].UserName)
	assert.Equal(t, "Bob", records[2].UserName)
}

func TestAttendanceRepository_Delete_NotFound(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	repo := postgresql.NewAttendanceRepository(db)
	err := repo.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestSettingRepository_UpsertRoundTrip(t *testing.T) {
	db := testDatabase(t)
	defer resetTables(t, db)
	resetTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewSettingRepository(db)

	_, err := repo.Get(ctx, setting.CutoffKey)
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)

	stored, err := repo.Set(ctx, setting.CutoffKey, "09:15")
	require.NoError(t, err)
	assert.Equal(t, "09:15", stored)

	stored, err = repo.Set(ctx, setting.CutoffKey, "07:30")
	require.NoError(t, err)
	assert.Equal(t, "07:30", stored)

	value, err := repo.Get(ctx, setting.CutoffKey)
	require.NoError(t, err)
	assert.Equal(t, "07:30", value)
}
