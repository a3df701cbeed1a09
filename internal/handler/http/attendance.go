package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/attendance"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", record)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.Today(r.Context())
	if err != nil {
		slog.Error("Today service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// record is nil when the caller has not checked in yet
	response.Success(w, record)
}

// UploadPhoto implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	var uploadReq attendance.UploadPhotoRequest

	if err := json.NewDecoder(r.Body).Decode(&uploadReq); err != nil {
		slog.Error("UploadPhoto decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	uploaded, err := h.attendanceService.UploadPhoto(r.Context(), uploadReq)
	if err != nil {
		slog.Error("UploadPhoto service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Photo uploaded", uploaded)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	if err := h.attendanceService.Delete(r.Context(), recordID); err != nil {
		slog.Error("Delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", nil)
}
