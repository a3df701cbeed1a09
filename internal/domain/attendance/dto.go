package attendance

import (
	"strings"
	"time"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	LocationLabel string   `json:"locationLabel"`
	PhotoURL      *string  `json:"photoUrl"`
	PhotoPublicID *string  `json:"photoPublicId"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Accuracy      *float64 `json:"accuracy"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	} else if *r.Latitude < -90 || *r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	} else if *r.Longitude < -180 || *r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	// photoUrl and photoPublicId travel together or not at all
	if (r.PhotoURL == nil) != (r.PhotoPublicID == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "photoUrl",
			Message: "photoUrl and photoPublicId must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FlagRequest struct {
	Comment string `json:"comment"`
}

func (r *FlagRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(strings.TrimSpace(r.Comment)) > 280 {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment must be 280 characters or less",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UploadPhotoRequest struct {
	DataURL string `json:"dataUrl"`
}

// maxPhotoDataURLBytes caps the inline payload well above a compressed
// webcam frame but below anything that would stall the connection.
const maxPhotoDataURLBytes = 8 * 1024 * 1024

func (r *UploadPhotoRequest) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case validator.IsEmpty(r.DataURL):
		errs = append(errs, validator.ValidationError{
			Field:   "dataUrl",
			Message: "dataUrl is required",
		})
	case !strings.HasPrefix(r.DataURL, "data:image/") || !strings.Contains(r.DataURL, ";base64,"):
		errs = append(errs, validator.ValidationError{
			Field:   "dataUrl",
			Message: "dataUrl must be a base64 image data URL",
		})
	case len(r.DataURL) > maxPhotoDataURLBytes:
		errs = append(errs, validator.ValidationError{
			Field:   "dataUrl",
			Message: "photo is too large",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UploadPhotoResponse struct {
	PhotoURL      string `json:"photoUrl"`
	PhotoPublicID string `json:"photoPublicId"`
}

// Response is the wire shape of an attendance record.
type Response struct {
	ID            string   `json:"id"`
	UserID        string   `json:"userId"`
	UserName      string   `json:"userName"`
	DateKey       string   `json:"dateKey"`
	CapturedAt    string   `json:"capturedAt"`
	Status        Status   `json:"status"`
	LocationLabel string   `json:"locationLabel"`
	PhotoURL      *string  `json:"photoUrl,omitempty"`
	PhotoPublicID *string  `json:"photoPublicId,omitempty"`
	FlagComment   *string  `json:"flagComment,omitempty"`
	FlaggedAt     *string  `json:"flaggedAt,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Accuracy      *float64 `json:"accuracy,omitempty"`
	Timezone      *string  `json:"timezone,omitempty"`
}

func NewResponse(record Attendance) Response {
	return Response{
		ID:            record.ID,
		UserID:        record.UserID,
		UserName:      record.UserName,
		DateKey:       record.DateKey,
		CapturedAt:    record.CapturedAt.UTC().Format(time.RFC3339),
		Status:        record.Status,
		LocationLabel: record.LocationLabel,
		PhotoURL:      record.PhotoURL,
		PhotoPublicID: record.PhotoPublicID,
		FlagComment:   record.FlagComment,
		FlaggedAt:     timePtrToRFC3339(record.FlaggedAt),
		Latitude:      record.Latitude,
		Longitude:     record.Longitude,
		Accuracy:      record.Accuracy,
		Timezone:      record.Timezone,
	}
}

// NewResponses maps records to their wire shape, re-deriving every status
// against the given cutoff. Reports serve derived status, not the snapshot.
func NewResponses(records []Attendance, cutoff string) []Response {
	responses := make([]Response, 0, len(records))
	for _, record := range records {
		resp := NewResponse(record)
		resp.Status = StatusForRecord(record, cutoff)
		responses = append(responses, resp)
	}
	return responses
}

func timePtrToRFC3339(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
