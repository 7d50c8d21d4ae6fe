// Package jsonapi provides JSON:API document types for API responses.
package jsonapi

import (
	"encoding/json"
	"time"
)

// MediaType is the JSON:API content type.
const MediaType = "application/vnd.api+json"

// Document represents a JSON:API top-level document.
// See: https://jsonapi.org/format/#document-structure
type Document struct {
	Data   any     `json:"data,omitempty"`
	Meta   *Meta   `json:"meta,omitempty"`
	Links  *Links  `json:"links,omitempty"`
	Errors []Error `json:"errors,omitempty"`
}

// Meta holds non-standard meta-information about a document.
type Meta map[string]any

// Links holds links associated with a document or resource.
type Links struct {
	Self string `json:"self,omitempty"`
	Up   string `json:"up,omitempty"`
}

// Resource represents a JSON:API resource object.
// See: https://jsonapi.org/format/#document-resource-objects
type Resource struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes any    `json:"attributes"`
	Links      *Links `json:"links,omitempty"`
}

// Error represents a JSON:API error object.
// See: https://jsonapi.org/format/#error-objects
type Error struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// NewResource creates a new resource with the given type, id and attributes.
func NewResource(resourceType, id string, attrs any) *Resource {
	return &Resource{
		Type:       resourceType,
		ID:         id,
		Attributes: attrs,
	}
}

// NewSingleResponse creates a JSON:API document with a single resource.
func NewSingleResponse(resource *Resource) *Document {
	return &Document{Data: resource}
}

// NewListResponse creates a JSON:API document with a list of resources.
// A nil list is encoded as an empty array.
func NewListResponse(resources []*Resource) *Document {
	if resources == nil {
		resources = []*Resource{}
	}
	return &Document{Data: resources}
}

// NewErrorResponse creates a JSON:API document with errors.
func NewErrorResponse(errors ...Error) *Document {
	return &Document{Errors: errors}
}

// DateTime serializes time.Time as RFC 3339, or null when zero.
type DateTime time.Time

// MarshalJSON serializes the DateTime to RFC 3339.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(dt)
	if t.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}
