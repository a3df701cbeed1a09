package report

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/attendance"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/report"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/setting"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/validator"
)

type ReportServiceImpl struct {
	attendance.Repository
	users    user.Repository
	settings *setting.Store
}

func NewReportService(repo attendance.Repository, users user.Repository, settings *setting.Store) report.ReportService {
	return &ReportServiceImpl{
		Repository: repo,
		users:      users,
		settings:   settings,
	}
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, dateKey string) (report.DailyRoster, error) {
	if dateKey == "" {
		dateKey = attendance.TodayKey()
	}
	if !validator.IsValidDateKey(dateKey) {
		return report.DailyRoster{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		}}
	}

	cutoff, err := s.settings.CutoffTime(ctx)
	if err != nil {
		return report.DailyRoster{}, fmt.Errorf("failed to read cutoff setting: %w", err)
	}

	records, err := s.Repository.ListByDateKey(ctx, dateKey, "")
	if err != nil {
		return report.DailyRoster{}, fmt.Errorf("failed to list attendance for day: %w", err)
	}

	employees, err := s.users.ListByRole(ctx, user.RoleUser)
	if err != nil {
		return report.DailyRoster{}, fmt.Errorf("failed to list employees: %w", err)
	}

	roster := make([]report.RosterUser, 0, len(employees))
	for _, employee := range employees {
		roster = append(roster, report.NewRosterUser(employee))
	}

	return report.DailyRoster{
		Date:       dateKey,
		CutoffTime: cutoff,
		Items:      attendance.NewResponses(records, cutoff),
		Users:      roster,
	}, nil
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, userID string, monthKey string) (report.MonthlyHistory, error) {
	if monthKey == "" {
		monthKey = attendance.CurrentMonthKey()
	}
	if !validator.IsValidMonthKey(monthKey) {
		return report.MonthlyHistory{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be a valid YYYY-MM month",
		}}
	}

	subject, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return report.MonthlyHistory{}, err
	}

	cutoff, err := s.settings.CutoffTime(ctx)
	if err != nil {
		return report.MonthlyHistory{}, fmt.Errorf("failed to read cutoff setting: %w", err)
	}

	records, err := s.Repository.ListByUserAndMonth(ctx, userID, monthKey)
	if err != nil {
		return report.MonthlyHistory{}, fmt.Errorf("failed to list attendance for month: %w", err)
	}

	items := attendance.NewResponses(records, cutoff)

	return report.MonthlyHistory{
		User:       report.NewRosterUser(subject),
		Month:      monthKey,
		CutoffTime: cutoff,
		Stats:      statsFor(items),
		Items:      items,
	}, nil
}

// statsFor tallies punctuality over derived statuses. The rate is a rounded
// percentage, zero when there is nothing to measure.
func statsFor(items []attendance.Response) report.Stats {
	stats := report.Stats{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case attendance.StatusLate:
			stats.Late++
		default:
			stats.OnTime++
		}
	}
	if stats.Total > 0 {
		stats.PunctualityRate = int(math.Round(float64(stats.OnTime) / float64(stats.Total) * 100))
	}
	return stats
}

// ExportRange implements report.ReportService.
func (s *ReportServiceImpl) ExportRange(ctx context.Context, req report.ExportRangeRequest) (report.Export, error) {
	start, end, err := req.Resolve()
	if err != nil {
		return report.Export{}, err
	}

	cutoff, err := s.settings.CutoffTime(ctx)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to read cutoff setting: %w", err)
	}

	records, err := s.Repository.ListByDateRange(ctx, start, end)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to list attendance for range: %w", err)
	}

	employees, err := s.users.ListByRole(ctx, user.RoleUser)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to list employees: %w", err)
	}

	// One row per (day, employee): a real record when one exists, a
	// synthesized Missing row when not.
	byUserAndDay := make(map[string]attendance.Attendance, len(records))
	for _, record := range records {
		byUserAndDay[record.UserID+"|"+record.DateKey] = record
	}

	var rows [][]interface{}
	for _, dateKey := range dateKeysBetween(start, end) {
		for _, employee := range employees {
			if record, ok := byUserAndDay[employee.ID+"|"+dateKey]; ok {
				rows = append(rows, exportRow(record, cutoff))
				continue
			}
			rows = append(rows, missingRow(dateKey, employee.Name))
		}
	}

	content, err := buildWorkbook(rows)
	if err != nil {
		return report.Export{}, err
	}

	return report.Export{
		Filename: fmt.Sprintf("attendance-%s-to-%s.xlsx", start, end),
		Content:  content,
	}, nil
}

// ExportUserMonth implements report.ReportService.
func (s *ReportServiceImpl) ExportUserMonth(ctx context.Context, userID string, monthKey string) (report.Export, error) {
	if monthKey == "" {
		monthKey = attendance.CurrentMonthKey()
	}
	if !validator.IsValidMonthKey(monthKey) {
		return report.Export{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be a valid YYYY-MM month",
		}}
	}

	subject, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return report.Export{}, err
	}

	cutoff, err := s.settings.CutoffTime(ctx)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to read cutoff setting: %w", err)
	}

	records, err := s.Repository.ListByUserAndMonth(ctx, userID, monthKey)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to list attendance for month: %w", err)
	}

	byDay := make(map[string]attendance.Attendance, len(records))
	for _, record := range records {
		byDay[record.DateKey] = record
	}

	var rows [][]interface{}
	for _, dateKey := range monthDateKeys(monthKey) {
		if record, ok := byDay[dateKey]; ok {
			rows = append(rows, userMonthRow(record, cutoff))
			continue
		}
		rows = append(rows, missingRow(dateKey, subject.Name))
	}

	content, err := buildWorkbook(rows)
	if err != nil {
		return report.Export{}, err
	}

	return report.Export{
		Filename: fmt.Sprintf("attendance-%s-%s.xlsx", safeFilename(subject.Name), monthKey),
		Content:  content,
	}, nil
}

func exportRow(record attendance.Attendance, cutoff string) []interface{} {
	timezone := ""
	if record.Timezone != nil {
		timezone = *record.Timezone
	}
	flagComment := ""
	if record.FlagComment != nil {
		flagComment = *record.FlagComment
	}
	return []interface{}{
		record.DateKey,
		attendance.FormatLocalTime(record.CapturedAt, timezone),
		record.UserName,
		attendance.StatusForRecord(record, cutoff).Label(),
		record.LocationLabel,
		flagComment,
	}
}

// userMonthRow is an exportRow whose Date column shows the capture day in the
// record's own timezone rather than the UTC day key.
func userMonthRow(record attendance.Attendance, cutoff string) []interface{} {
	timezone := ""
	if record.Timezone != nil {
		timezone = *record.Timezone
	}
	row := exportRow(record, cutoff)
	row[0] = attendance.FormatLocalDate(record.CapturedAt, timezone)
	return row
}

func missingRow(dateKey, userName string) []interface{} {
	return []interface{}{dateKey, "", userName, attendance.StatusMissing.Label(), "", ""}
}

// dateKeysBetween enumerates the inclusive [start, end] range of day keys.
// Both endpoints are pre-validated.
func dateKeysBetween(start, end string) []string {
	startDay, _ := time.Parse(attendance.DateKeyLayout, start)
	endDay, _ := time.Parse(attendance.DateKeyLayout, end)

	var keys []string
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		keys = append(keys, day.Format(attendance.DateKeyLayout))
	}
	return keys
}

// monthDateKeys enumerates every day key of a pre-validated YYYY-MM month.
func monthDateKeys(monthKey string) []string {
	first, _ := time.Parse("2006-01", monthKey)
	next := first.AddDate(0, 1, 0)

	var keys []string
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		keys = append(keys, day.Format(attendance.DateKeyLayout))
	}
	return keys
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9]+`)

func safeFilename(name string) string {
	safe := unsafeFilenameChars.ReplaceAllString(strings.ToLower(name), "-")
	safe = strings.Trim(safe, "-")
	if safe == "" {
		return "user"
	}
	return safe
}
