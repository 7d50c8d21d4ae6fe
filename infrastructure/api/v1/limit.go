// Package v1 provides the v1 API routes.
package v1

import (
	"net/http"
	"strconv"

	"github.com/helixml/wikitree/infrastructure/api/middleware"
)

// ParseLimit reads the limit query parameter, falling back to def when it is
// absent. Values <= 0 mean no limit.
func ParseLimit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, middleware.NewAPIError(http.StatusBadRequest, "limit must be an integer", err)
	}
	return n, nil
}
