package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/attendance"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/report"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/setting"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/handler/http/response"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	DailyRoster(w http.ResponseWriter, r *http.Request)
	MonthlyHistory(w http.ResponseWriter, r *http.Request)
	ExportRange(w http.ResponseWriter, r *http.Request)
	ExportUserMonth(w http.ResponseWriter, r *http.Request)
	SetFlag(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	settings          *setting.Store
	reportService     report.ReportService
	attendanceService attendance.AttendanceService
	userService       user.UserService
}

func NewAdminHandler(
	settings *setting.Store,
	reportService report.ReportService,
	attendanceService attendance.AttendanceService,
	userService user.UserService,
) AdminHandler {
	return &AdminHandlerImpl{
		settings:          settings,
		reportService:     reportService,
		attendanceService: attendanceService,
		userService:       userService,
	}
}

type settingsPayload struct {
	CutoffTime string `json:"cutoffTime"`
}

// GetSettings implements AdminHandler.
func (h *AdminHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	cutoff, err := h.settings.CutoffTime(r.Context())
	if err != nil {
		slog.Error("GetSettings store error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settingsPayload{CutoffTime: cutoff})
}

// UpdateSettings implements AdminHandler.
func (h *AdminHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload settingsPayload

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payload.CutoffTime = strings.TrimSpace(payload.CutoffTime)
	if !validator.IsValidCutoffTime(payload.CutoffTime) {
		response.ValidationError(w, map[string]string{
			"cutoffTime": "cutoffTime must be a valid HH:mm time",
		})
		return
	}

	stored, err := h.settings.SetCutoffTime(r.Context(), payload.CutoffTime)
	if err != nil {
		slog.Error("UpdateSettings store error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settingsPayload{CutoffTime: stored})
}

// DailyRoster implements AdminHandler.
func (h *AdminHandlerImpl) DailyRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.reportService.Daily(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		slog.Error("DailyRoster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster)
}

// MonthlyHistory implements AdminHandler.
func (h *AdminHandlerImpl) MonthlyHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	history, err := h.reportService.Monthly(r.Context(), userID, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("MonthlyHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// ExportRange implements AdminHandler.
func (h *AdminHandlerImpl) ExportRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	export, err := h.reportService.ExportRange(r.Context(), report.ExportRangeRequest{
		Date:  query.Get("date"),
		Start: query.Get("start"),
		End:   query.Get("end"),
	})
	if err != nil {
		slog.Error("ExportRange service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, export)
}

// ExportUserMonth implements AdminHandler.
func (h *AdminHandlerImpl) ExportUserMonth(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	export, err := h.reportService.ExportUserMonth(r.Context(), userID, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("ExportUserMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, export)
}

// SetFlag implements AdminHandler.
func (h *AdminHandlerImpl) SetFlag(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	var flagReq attendance.FlagRequest
	if err := json.NewDecoder(r.Body).Decode(&flagReq); err != nil {
		slog.Error("SetFlag decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.attendanceService.SetFlag(r.Context(), recordID, flagReq)
	if err != nil {
		slog.Error("SetFlag service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// ListUsers implements AdminHandler.
func (h *AdminHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	employees, err := h.userService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

func writeWorkbook(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Content); err != nil {
		slog.Error("failed to write workbook response", "error", err)
	}
}
