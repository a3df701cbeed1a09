package response

import (
	"errors"
	"net/http"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/attendance"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/auth"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/validator"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/service/location"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidResetToken):
		BadRequest(w, "Invalid or expired reset token", nil)
	case errors.Is(err, auth.ErrInvalidInviteCode):
		Forbidden(w, "Invalid admin invite code")
	case errors.Is(err, auth.ErrInviteCodeNotConfigured):
		ServiceUnavailable(w, "Admin signup is not enabled")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotAllowed):
		Forbidden(w, "Not allowed")
	case errors.Is(err, attendance.ErrPhotoStoreUnavailable):
		ServiceUnavailable(w, "Photo storage is not configured")
	case errors.Is(err, attendance.ErrPhotoDeleteFailed):
		BadGateway(w, "Photo storage rejected the delete")

	// Location lookup errors
	case errors.Is(err, location.ErrLocationUnavailable):
		BadGateway(w, "No location service could be reached")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
