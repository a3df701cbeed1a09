package postgresql

import (
	"context"
	"errors"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/attendance"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const attendanceColumns = `
	id, date_key, user_id, user_name, captured_at, status, location_label,
	photo_url, photo_public_id, flag_comment, flagged_at,
	latitude, longitude, accuracy, timezone, created_at, updated_at
`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.Repository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			date_key, user_id, user_name, captured_at, status, location_label,
			photo_url, photo_public_id, latitude, longitude, accuracy, timezone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + attendanceColumns

	row := q.QueryRow(ctx, query,
		record.DateKey,
		record.UserID,
		record.UserName,
		record.CapturedAt,
		record.Status,
		record.LocationLabel,
		record.PhotoURL,
		record.PhotoPublicID,
		record.Latitude,
		record.Longitude,
		record.Accuracy,
		record.Timezone,
	)

	created, err := scanAttendance(row)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is the unique violation on (user_id, date_key)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, err
	}

	return created, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	record, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, err
	}

	return record, nil
}

// ListByDateKey implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByDateKey(ctx context.Context, dateKey string, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE date_key = $1`
	args := []interface{}{dateKey}

	if userID != "" {
		query += ` AND user_id = $2`
		args = append(args, userID)
	}
	query += ` ORDER BY captured_at ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByUserAndMonth implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByUserAndMonth(ctx context.Context, userID string, monthKey string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1 AND date_key LIKE $2 || '-%'
		ORDER BY captured_at ASC
	`

	rows, err := q.Query(ctx, query, userID, monthKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByDateRange implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByDateRange(ctx context.Context, start, end string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date_key >= $1 AND date_key <= $2
		ORDER BY date_key ASC, user_name ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// UpdateFlag implements attendance.Repository.
func (r *attendanceRepositoryImpl) UpdateFlag(ctx context.Context, id string, comment *string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	// comment and flagged_at always change together
	query := `
		UPDATE attendance_records
		SET flag_comment = $1,
		    flagged_at = CASE WHEN $1::text IS NULL THEN NULL ELSE NOW() END,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING ` + attendanceColumns

	record, err := scanAttendance(q.QueryRow(ctx, query, comment, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, err
	}

	return record, nil
}

// Delete implements attendance.Repository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var record attendance.Attendance
	err := row.Scan(
		&record.ID,
		&record.DateKey,
		&record.UserID,
		&record.UserName,
		&record.CapturedAt,
		&record.Status,
		&record.LocationLabel,
		&record.PhotoURL,
		&record.PhotoPublicID,
		&record.FlagComment,
		&record.FlaggedAt,
		&record.Latitude,
		&record.Longitude,
		&record.Accuracy,
		&record.Timezone,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	return record, err
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
