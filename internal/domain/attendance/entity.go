package attendance

import (
	"time"
)

// Attendance is one check-in record. At most one exists per (UserID, DateKey);
// the storage layer enforces that with a unique constraint.
type Attendance struct {
	ID       string
	DateKey  string // YYYY-MM-DD, server clock (UTC) at creation time
	UserID   string
	UserName string // display-name snapshot at capture time, never revised
	// CapturedAt is the authoritative instant, stored as a UTC timestamp.
	CapturedAt    time.Time
	Status        Status // snapshot against the cutoff at capture time
	LocationLabel string
	PhotoURL      *string
	PhotoPublicID *string
	FlagComment   *string
	FlaggedAt     *time.Time
	Latitude      *float64
	Longitude     *float64
	Accuracy      *float64
	Timezone      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const DateKeyLayout = "2006-01-02"

// TodayKey returns the dateKey for the current server-clock day (UTC).
func TodayKey() string {
	return time.Now().UTC().Format(DateKeyLayout)
}

// CurrentMonthKey returns the YYYY-MM key for the current server-clock month.
func CurrentMonthKey() string {
	return time.Now().UTC().Format("2006-01")
}
