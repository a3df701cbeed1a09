package http

import (
	"log/slog"
	"net/http"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/handler/http/response"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/service/location"
)

type LocationHandler interface {
	NetworkLocate(w http.ResponseWriter, r *http.Request)
}

type LocationHandlerImpl struct {
	locationService location.LocationService
}

func NewLocationHandler(locationService location.LocationService) LocationHandler {
	return &LocationHandlerImpl{locationService: locationService}
}

// NetworkLocate implements LocationHandler.
func (h *LocationHandlerImpl) NetworkLocate(w http.ResponseWriter, r *http.Request) {
	located, err := h.locationService.NetworkLocate(r.Context())
	if err != nil {
		slog.Error("NetworkLocate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, located)
}
