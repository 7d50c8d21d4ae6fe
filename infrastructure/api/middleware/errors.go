package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/helixml/wikitree/application/service"
	"github.com/helixml/wikitree/domain/page"
	"github.com/helixml/wikitree/domain/tree"
	"github.com/helixml/wikitree/infrastructure/api/jsonapi"
	"github.com/helixml/wikitree/internal/database"
	"github.com/helixml/wikitree/internal/log"
)

// APIError is an error carrying an explicit HTTP status.
type APIError struct {
	code    int
	message string
	cause   error
}

// NewAPIError creates an APIError.
func NewAPIError(code int, message string, cause error) *APIError {
	return &APIError{code: code, message: message, cause: cause}
}

// Code returns the HTTP status code.
func (e *APIError) Code() int { return e.code }

// Message returns the client-facing message.
func (e *APIError) Message() string { return e.message }

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("api error %d: %s", e.code, e.message)
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error { return e.cause }

// Status maps an error to its HTTP status code and title.
func Status(err error) (int, string) {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Code(), http.StatusText(apiErr.Code())
	case errors.Is(err, page.ErrInvalidSlug),
		errors.Is(err, service.ErrOwnerRequired),
		errors.Is(err, service.ErrInvalidImport):
		return http.StatusBadRequest, "Validation Error"
	case errors.Is(err, tree.ErrDuplicatePath):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, service.ErrNotFound), errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, "Not Found"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// WriteError writes err as a JSON:API error document. Server errors are
// logged and their detail withheld from the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *log.Logger) {
	status, title := Status(err)

	detail := err.Error()
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		detail = apiErr.Message()
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		detail = ""
	}

	doc := jsonapi.NewErrorResponse(jsonapi.Error{
		ID:     log.CorrelationID(r.Context()),
		Status: strconv.Itoa(status),
		Title:  title,
		Detail: detail,
	})
	writeBody(w, status, jsonapi.MediaType, doc)
}

// WriteJSON writes data as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	writeBody(w, status, "application/json", data)
}

// WriteDocument writes a JSON:API document.
func WriteDocument(w http.ResponseWriter, status int, doc *jsonapi.Document) {
	writeBody(w, status, jsonapi.MediaType, doc)
}

func writeBody(w http.ResponseWriter, status int, contentType string, data any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
