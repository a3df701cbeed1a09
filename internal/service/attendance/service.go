package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/attendance"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/setting"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/user"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/cloudinary"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/geo"
	"github.com/go-chi/jwtauth/v5"
)

// PhotoStore is the slice of the Cloudinary client the service needs. A nil
// store means photo storage is not configured.
type PhotoStore interface {
	UploadDataURL(ctx context.Context, dataURL string) (*cloudinary.UploadResult, error)
	Destroy(ctx context.Context, publicID string) (string, error)
}

type AttendanceServiceImpl struct {
	attendance.Repository
	settings   *setting.Store
	timezones  geo.TimezoneLookup
	geocoder   *geo.ReverseGeocoder
	photoStore PhotoStore
}

func NewAttendanceService(
	repo attendance.Repository,
	settings *setting.Store,
	timezones geo.TimezoneLookup,
	geocoder *geo.ReverseGeocoder,
	photoStore PhotoStore,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		Repository: repo,
		settings:   settings,
		timezones:  timezones,
		geocoder:   geocoder,
		photoStore: photoStore,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}
	nowUTC := time.Now().UTC()

	userID, claims, err := callerClaims(ctx)
	if err != nil {
		return attendance.Response{}, err
	}
	userName, _ := claims["name"].(string)

	record := attendance.Attendance{
		DateKey:    attendance.TodayKey(),
		UserID:     userID,
		UserName:   userName,
		CapturedAt: nowUTC,
		PhotoURL:   req.PhotoURL,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
	}
	record.PhotoPublicID = req.PhotoPublicID

	// Timezone resolution is best-effort; a miss never blocks the check-in.
	var timezone string
	if a.timezones != nil {
		timezone = a.timezones.TimezoneFor(*req.Latitude, *req.Longitude)
	}
	if timezone != "" {
		record.Timezone = &timezone
	}

	record.LocationLabel = a.resolveLocationLabel(ctx, req)
	record.Status = a.captureStatus(ctx, nowUTC, timezone)

	created, err := a.Repository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.Response{}, err
		}
		return attendance.Response{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.NewResponse(created), nil
}

// resolveLocationLabel picks the label in precedence order: the client's own
// label, then a reverse-geocoded address, then the raw coordinates.
func (a *AttendanceServiceImpl) resolveLocationLabel(ctx context.Context, req attendance.CheckInRequest) string {
	if label := strings.TrimSpace(req.LocationLabel); label != "" {
		return label
	}

	if a.geocoder != nil {
		in := geo.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if result, ok := a.geocoder.Resolve(ctx, in); ok {
			return result.Label
		}
	}

	label := fmt.Sprintf("GPS %.5f, %.5f", *req.Latitude, *req.Longitude)
	if req.Accuracy != nil {
		label += fmt.Sprintf(" (+/-%dm)", int(math.Round(*req.Accuracy)))
	}
	return label
}

// captureStatus classifies the capture instant against the current cutoff.
// Without a resolved timezone the snapshot is recorded as on time; reports
// re-derive against the cutoff anyway.
func (a *AttendanceServiceImpl) captureStatus(ctx context.Context, nowUTC time.Time, timezone string) attendance.Status {
	if timezone == "" {
		return attendance.StatusOnTime
	}
	return attendance.StatusForTime(nowUTC, timezone, a.cutoff(ctx))
}

// cutoff reads the configured cutoff, degrading to the default on storage
// errors so a settings outage never blocks check-ins.
func (a *AttendanceServiceImpl) cutoff(ctx context.Context) string {
	cutoff, err := a.settings.CutoffTime(ctx)
	if err != nil {
		slog.Warn("failed to read cutoff setting, using default", "error", err)
		return setting.DefaultCutoff
	}
	return cutoff
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (*attendance.Response, error) {
	userID, _, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.Repository.ListByDateKey(ctx, attendance.TodayKey(), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	responses := attendance.NewResponses(records[:1], a.cutoff(ctx))
	return &responses[0], nil
}

// UploadPhoto implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UploadPhoto(ctx context.Context, req attendance.UploadPhotoRequest) (attendance.UploadPhotoResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.UploadPhotoResponse{}, err
	}
	if a.photoStore == nil {
		return attendance.UploadPhotoResponse{}, attendance.ErrPhotoStoreUnavailable
	}

	result, err := a.photoStore.UploadDataURL(ctx, req.DataURL)
	if err != nil {
		return attendance.UploadPhotoResponse{}, fmt.Errorf("failed to upload photo: %w", err)
	}

	return attendance.UploadPhotoResponse{
		PhotoURL:      result.SecureURL,
		PhotoPublicID: result.PublicID,
	}, nil
}

// SetFlag implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SetFlag(ctx context.Context, id string, req attendance.FlagRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	// An empty comment clears the flag pair
	var comment *string
	if trimmed := strings.TrimSpace(req.Comment); trimmed != "" {
		comment = &trimmed
	}

	updated, err := a.Repository.UpdateFlag(ctx, id, comment)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.Response{}, err
		}
		return attendance.Response{}, fmt.Errorf("failed to update flag: %w", err)
	}

	resp := attendance.NewResponse(updated)
	resp.Status = attendance.StatusForRecord(updated, a.cutoff(ctx))
	return resp, nil
}

// Delete implements attendance.AttendanceService. Only the record's owner or
// an admin may delete it.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	userID, claims, err := callerClaims(ctx)
	if err != nil {
		return err
	}

	record, err := a.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to load attendance record: %w", err)
	}

	if role, _ := claims["role"].(string); role != string(user.RoleAdmin) && record.UserID != userID {
		return attendance.ErrNotAllowed
	}

	// The stored photo goes first so a failed destroy never orphans the asset
	// behind a deleted row.
	if record.PhotoPublicID != nil && *record.PhotoPublicID != "" {
		if a.photoStore == nil {
			return attendance.ErrPhotoStoreUnavailable
		}
		result, err := a.photoStore.Destroy(ctx, *record.PhotoPublicID)
		if err != nil {
			return fmt.Errorf("%w: %v", attendance.ErrPhotoDeleteFailed, err)
		}
		if result != "ok" && result != "not found" {
			return fmt.Errorf("%w: unexpected result %q", attendance.ErrPhotoDeleteFailed, result)
		}
	}

	if err := a.Repository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	return nil
}

// callerClaims extracts the authenticated user's id and claims from ctx.
func callerClaims(ctx context.Context) (string, map[string]interface{}, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", nil, fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, claims, nil
}
