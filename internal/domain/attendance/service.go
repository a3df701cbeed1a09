package attendance

import "context"

type AttendanceService interface {
	// CheckIn records the caller's check-in for the current day
	CheckIn(ctx context.Context, req CheckInRequest) (Response, error)

	// Today returns the caller's record for the current day, nil when absent
	Today(ctx context.Context) (*Response, error)

	// UploadPhoto stores a check-in photo and returns its public handle
	UploadPhoto(ctx context.Context, req UploadPhotoRequest) (UploadPhotoResponse, error)

	// SetFlag sets or clears the review comment on a record (admin)
	SetFlag(ctx context.Context, id string, req FlagRequest) (Response, error)

	// Delete removes a record and its stored photo (admin)
	Delete(ctx context.Context, id string) error
}
