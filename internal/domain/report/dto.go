package report

import (
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/attendance"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

// RosterUser is the slim user shape embedded in admin report payloads.
type RosterUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewRosterUser(u user.User) RosterUser {
	return RosterUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// DailyRoster is one day's records joined against the roster of known users.
type DailyRoster struct {
	Date       string                `json:"date"`
	CutoffTime string                `json:"cutoffTime"`
	Items      []attendance.Response `json:"items"`
	Users      []RosterUser          `json:"users"`
}

// Stats summarizes a user's punctuality for one month.
type Stats struct {
	OnTime          int `json:"onTime"`
	Late            int `json:"late"`
	Total           int `json:"total"`
	PunctualityRate int `json:"punctualityRate"`
}

// MonthlyHistory is one user's records for a YYYY-MM month, re-classified
// against the current cutoff.
type MonthlyHistory struct {
	User       RosterUser            `json:"user"`
	Month      string                `json:"month"`
	CutoffTime string                `json:"cutoffTime"`
	Stats      Stats                 `json:"stats"`
	Items      []attendance.Response `json:"items"`
}

// ExportRangeRequest resolves the query parameters of a range export. A
// single date is shorthand for start=end=date; one endpoint defaults the
// other to match it.
type ExportRangeRequest struct {
	Date  string
	Start string
	End   string
}

// Resolve returns the validated inclusive [start, end] range.
func (r ExportRangeRequest) Resolve() (start, end string, err error) {
	start, end = r.Start, r.End

	if start == "" && end == "" && r.Date != "" {
		start, end = r.Date, r.Date
	}
	if start != "" && end == "" {
		end = start
	}
	if end != "" && start == "" {
		start = end
	}

	var errs validator.ValidationErrors
	if !validator.IsValidDateKey(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be a valid YYYY-MM-DD date",
		})
	}
	if !validator.IsValidDateKey(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be a valid YYYY-MM-DD date",
		})
	}
	if len(errs) == 0 && start > end {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must not be after end",
		})
	}
	if len(errs) > 0 {
		return "", "", errs
	}

	return start, end, nil
}

// Export is a rendered workbook plus the filename to serve it under.
type Export struct {
	Filename string
	Content  []byte
}
