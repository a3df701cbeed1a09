package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn = errors.New("user already checked in today")
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrNotAllowed       = errors.New("not allowed to modify this attendance record")

	// Photo store errors. Deleting a record with a stored photo requires the
	// photo to be destroyed first; an ambiguous answer from the store blocks
	// the deletion.
	ErrPhotoStoreUnavailable = errors.New("photo storage not configured")
	ErrPhotoDeleteFailed     = errors.New("failed to delete photo from storage")
)
