package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Errors from third-party services the backend calls on behalf of clients
var (
	ErrUpstreamFetch = errors.New("upstream fetch failed")
)

// NewUpstreamError wraps a failed call to an external platform (e.g. an
// oEmbed endpoint). Distinct from database errors so callers can tell
// "our store broke" apart from "their API broke".
func NewUpstreamError(platform string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("Failed to fetch %s thumbnail", platform),
		Cause:      fmt.Errorf("%w: %w", ErrUpstreamFetch, cause),
	}
}
