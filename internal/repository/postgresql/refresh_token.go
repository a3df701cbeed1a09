package postgresql

import (
	"context"
	"time"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/auth"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Save implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Save(ctx context.Context, userID, token string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET expires_at = EXCLUDED.expires_at
	`

	_, err := q.Exec(ctx, query, userID, token, expiresAt)
	return err
}

// Delete implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Delete(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	return err
}

// DeleteByUser implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}

// Exists implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Exists(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token = $1 AND expires_at > NOW())`
	if err := q.QueryRow(ctx, query, token).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
