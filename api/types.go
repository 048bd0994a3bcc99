package api

import (
	"strconv"

	"github.com/errands-sys/portfolio-backend/errs"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler      healthHandler
	projectHandler     projectHandler
	videoHandler       videoHandler
	contactHandler     contactHandler
	contactInfoHandler contactInfoHandler
	thumbnailHandler   thumbnailHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error string `json:"error" example:"Project not found"`
}

// parseID parses a URL path identity segment into the integer primary key.
func parseID(raw, name string) (int64, error) {
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
