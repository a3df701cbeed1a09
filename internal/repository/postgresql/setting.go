package postgresql

import (
	"context"
	"errors"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/setting"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.Repository {
	return &settingRepositoryImpl{db: db}
}

// Get implements setting.Repository.
func (r *settingRepositoryImpl) Get(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", setting.ErrSettingNotFound
		}
		return "", err
	}

	return value, nil
}

// Set implements setting.Repository.
func (r *settingRepositoryImpl) Set(ctx context.Context, key, value string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING value
	`

	var stored string
	if err := q.QueryRow(ctx, query, key, value).Scan(&stored); err != nil {
		return "", err
	}

	return stored, nil
}
