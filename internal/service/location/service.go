// Package location resolves a coarse caller location from the server's
// network address when the browser denies GPS access.
package location

import (
	"context"
	"errors"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/geo"
)

// ErrLocationUnavailable is returned when every lookup service is exhausted.
var ErrLocationUnavailable = errors.New("network location unavailable")

type LocationService interface {
	NetworkLocate(ctx context.Context) (geo.NetworkLocation, error)
}

type LocationServiceImpl struct {
	locator *geo.NetworkLocator
}

func NewLocationService(locator *geo.NetworkLocator) LocationService {
	return &LocationServiceImpl{locator: locator}
}

// NetworkLocate implements LocationService.
func (s *LocationServiceImpl) NetworkLocate(ctx context.Context) (geo.NetworkLocation, error) {
	location, ok := s.locator.Resolve(ctx, struct{}{})
	if !ok {
		return geo.NetworkLocation{}, ErrLocationUnavailable
	}
	return location, nil
}
