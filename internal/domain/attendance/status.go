package attendance

import (
	"regexp"
	"strconv"
	"time"
)

type Status string

const (
	StatusOnTime Status = "on-time"
	StatusLate   Status = "late"
	// StatusMissing is synthesized by reports for user-days with no record.
	// It is never persisted; the repository layer rejects it.
	StatusMissing Status = "missing"
)

// Label returns the human-readable form used in exports.
func (s Status) Label() string {
	switch s {
	case StatusLate:
		return "Late"
	case StatusMissing:
		return "Missing"
	default:
		return "On time"
	}
}

// DefaultCutoff is used whenever the stored cutoff is absent or malformed.
// A corrupt setting must never block a check-in.
const DefaultCutoff = "08:00"

var cutoffRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ParseCutoff parses an "HH:mm" cutoff. ok is false on malformed input.
func ParseCutoff(value string) (hour, minute int, ok bool) {
	match := cutoffRegex.FindStringSubmatch(value)
	if match == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(match[1])
	minute, _ = strconv.Atoi(match[2])
	return hour, minute, true
}

// LocalClock resolves the wall-clock hour and minute of t in the given IANA
// zone. An absent or invalid zone falls back to the host's local zone; an
// invalid zone is a recoverable condition, not an error.
func LocalClock(t time.Time, timezone string) (hour, minute int) {
	loc := time.Local
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}
	local := t.In(loc)
	return local.Hour(), local.Minute()
}

// StatusForTime classifies a capture instant against an "HH:mm" cutoff
// expressed in the employee's local time. The boundary is inclusive: a
// capture at exactly the cutoff minute is on time.
func StatusForTime(t time.Time, timezone string, cutoff string) Status {
	cutoffHour, cutoffMinute, ok := ParseCutoff(cutoff)
	if !ok {
		cutoffHour, cutoffMinute, _ = ParseCutoff(DefaultCutoff)
	}

	hour, minute := LocalClock(t, timezone)
	if hour < cutoffHour {
		return StatusOnTime
	}
	if hour == cutoffHour && minute <= cutoffMinute {
		return StatusOnTime
	}
	return StatusLate
}

// StatusForRecord re-derives a record's status against the given cutoff.
// Reports call this with the current cutoff: status is a derived view, the
// persisted column is only the capture-time snapshot.
func StatusForRecord(record Attendance, cutoff string) Status {
	timezone := ""
	if record.Timezone != nil {
		timezone = *record.Timezone
	}
	return StatusForTime(record.CapturedAt, timezone, cutoff)
}

// FormatLocalTime renders the record's capture instant as "HH:mm" in its own
// timezone, falling back to the host zone when the zone is absent or invalid.
func FormatLocalTime(t time.Time, timezone string) string {
	loc := time.Local
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}
	return t.In(loc).Format("15:04")
}

// FormatLocalDate renders the record's capture instant as "YYYY-MM-DD" in its
// own timezone, with the same fallback as FormatLocalTime.
func FormatLocalDate(t time.Time, timezone string) string {
	loc := time.Local
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}
	return t.In(loc).Format(DateKeyLayout)
}
