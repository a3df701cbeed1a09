package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCutoff(t *testing.T) {
	cases := []struct {
		input  string
		hour   int
		minute int
		ok     bool
	}{
		{"08:00", 8, 0, true},
		{"00:00", 0, 0, true},
		{"23:59", 23, 59, true},
		{"09:30", 9, 30, true},
		{"24:00", 0, 0, false},
		{"08:60", 0, 0, false},
		{"8:00", 0, 0, false},
		{"garbage", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, c := range cases {
		hour, minute, ok := ParseCutoff(c.input)
		if ok != c.ok || hour != c.hour || minute != c.minute {
			t.Errorf("ParseCutoff(%q) = (%d, %d, %v), want (%d, %d, %v)",
				c.input, hour, minute, ok, c.hour, c.minute, c.ok)
		}
	}
}

func TestStatusForTimeBoundaryInclusive(t *testing.T) {
	// 01:00 UTC is exactly 08:00 in Asia/Jakarta (UTC+7)
	atCutoff := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusOnTime, StatusForTime(atCutoff, "Asia/Jakarta", "08:00"))

	// 08:00:59 local is still within the cutoff minute
	withinMinute := atCutoff.Add(59 * time.Second)
	assert.Equal(t, StatusOnTime, StatusForTime(withinMinute, "Asia/Jakarta", "08:00"))

	// 08:01 local is late
	oneMinuteLate := atCutoff.Add(time.Minute)
	assert.Equal(t, StatusLate, StatusForTime(oneMinuteLate, "Asia/Jakarta", "08:00"))

	// 07:59 local is on time
	oneMinuteEarly := atCutoff.Add(-time.Minute)
	assert.Equal(t, StatusOnTime, StatusForTime(oneMinuteEarly, "Asia/Jakarta", "08:00"))
}

func TestStatusForTimeRespectsTimezone(t *testing.T) {
	// 23:30 UTC on the 14th is 06:30 in Asia/Jakarta on the 15th
	instant := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, StatusOnTime, StatusForTime(instant, "Asia/Jakarta", "08:00"))

	// The same instant in a UTC-5 zone is 18:30 the previous evening
	assert.Equal(t, StatusLate, StatusForTime(instant, "America/New_York", "08:00"))
}

func TestStatusForTimeMalformedCutoffUsesDefault(t *testing.T) {
	// 07:30 local with a corrupt cutoff: default 08:00 applies
	instant := time.Date(2024, 3, 15, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, StatusOnTime, StatusForTime(instant, "Asia/Jakarta", "not-a-time"))

	// 09:00 local with a corrupt cutoff is late against the default
	instant = time.Date(2024, 3, 15, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusLate, StatusForTime(instant, "Asia/Jakarta", "25:99"))
}

func TestStatusForTimeInvalidZoneFallsBack(t *testing.T) {
	instant := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)

	// Must not panic and must classify to one of the two persisted states
	got := StatusForTime(instant, "Not/AZone", "08:00")
	assert.Contains(t, []Status{StatusOnTime, StatusLate}, got)

	got = StatusForTime(instant, "", "08:00")
	assert.Contains(t, []Status{StatusOnTime, StatusLate}, got)
}

func TestStatusForRecord(t *testing.T) {
	timezone := "Asia/Jakarta"
	record := Attendance{
		CapturedAt: time.Date(2024, 3, 15, 1, 45, 0, 0, time.UTC), // 08:45 local
		Timezone:   &timezone,
	}

	assert.Equal(t, StatusLate, StatusForRecord(record, "08:00"))

	// Raising the cutoff flips the derived status for the same record
	assert.Equal(t, StatusOnTime, StatusForRecord(record, "09:00"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "On time", StatusOnTime.Label())
	assert.Equal(t, "Late", StatusLate.Label())
	assert.Equal(t, "Missing", StatusMissing.Label())
}

func TestFormatLocalTime(t *testing.T) {
	instant := time.Date(2024, 3, 15, 1, 5, 0, 0, time.UTC)
	assert.Equal(t, "08:05", FormatLocalTime(instant, "Asia/Jakarta"))
	assert.Equal(t, "2024-03-15", FormatLocalDate(instant, "Asia/Jakarta"))
}
