package report

import "context"

type ReportService interface {
	// Daily returns one day's records joined with the employee roster (admin)
	Daily(ctx context.Context, dateKey string) (DailyRoster, error)

	// Monthly returns one user's month with punctuality stats (admin)
	Monthly(ctx context.Context, userID string, monthKey string) (MonthlyHistory, error)

	// ExportRange renders the dense per-user-per-day workbook for a date range (admin)
	ExportRange(ctx context.Context, req ExportRangeRequest) (Export, error)

	// ExportUserMonth renders one user's month as a workbook (admin)
	ExportUserMonth(ctx context.Context, userID string, monthKey string) (Export, error)
}
