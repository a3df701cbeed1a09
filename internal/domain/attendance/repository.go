package attendance

import (
	"context"
)

// Repository defines data access for attendance records.
type Repository interface {
	// Create inserts a new record. A duplicate (user_id, date_key) pair
	// returns ErrAlreadyCheckedIn; the caller never retries or overwrites.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetByID returns ErrRecordNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByDateKey returns records for one calendar day sorted by capture
	// instant ascending. userID, when non-empty, scopes to one user.
	ListByDateKey(ctx context.Context, dateKey string, userID string) ([]Attendance, error)

	// ListByUserAndMonth returns one user's records whose dateKey carries the
	// given YYYY-MM prefix, sorted by capture instant ascending.
	ListByUserAndMonth(ctx context.Context, userID string, monthKey string) ([]Attendance, error)

	// ListByDateRange returns records with start <= dateKey <= end, sorted by
	// dateKey ascending then user name ascending.
	ListByDateRange(ctx context.Context, start, end string) ([]Attendance, error)

	// UpdateFlag sets or clears the flag comment pair atomically. Both fields
	// are written together: a non-nil comment stamps flaggedAt, a nil comment
	// clears both.
	UpdateFlag(ctx context.Context, id string, comment *string) (Attendance, error)

	// Delete removes a record. Unknown id returns ErrRecordNotFound.
	Delete(ctx context.Context, id string) error
}
