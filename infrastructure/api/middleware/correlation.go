package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/helixml/wikitree/application/service"
	"github.com/helixml/wikitree/internal/log"
)

// Request and response headers understood by the API.
const (
	CorrelationIDHeader = "X-Correlation-ID"
	ViewerIDHeader      = "X-Viewer-ID"
)

// CorrelationID stores a correlation ID in the request context and echoes it
// in the response. The client's X-Correlation-ID is reused when present.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(CorrelationIDHeader, id)

		ctx := log.WithCorrelationID(r.Context(), id)
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			ctx = log.WithRequestID(ctx, reqID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Viewer stores the identity asserted by the upstream auth proxy in the
// request context, where service.ViewerFrom reads it. The id is also attached
// to request logs. A missing header means an anonymous viewer.
func Viewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(ViewerIDHeader); id != "" {
			ctx := service.WithViewer(r.Context(), id)
			r = r.WithContext(log.WithViewerID(ctx, id))
		}
		next.ServeHTTP(w, r)
	})
}
