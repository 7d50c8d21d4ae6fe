// Package dto holds the API's response payloads.
package dto

import (
	"strconv"

	"github.com/helixml/wikitree/domain/page"
	"github.com/helixml/wikitree/infrastructure/api/jsonapi"
)

// PageType is the JSON:API resource type for pages.
const PageType = "pages"

// PageAttributes are the exposed fields of a page.
type PageAttributes struct {
	Owner       string           `json:"owner"`
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Priority    int              `json:"priority"`
	Public      bool             `json:"public"`
	LastUpdated jsonapi.DateTime `json:"last_updated"`
}

// NewPageAttributes converts p.
func NewPageAttributes(p page.Page) PageAttributes {
	return PageAttributes{
		Owner:       p.OwnerID(),
		Slug:        p.Slug(),
		Title:       p.Title(),
		Priority:    p.Priority(),
		Public:      p.Public(),
		LastUpdated: jsonapi.DateTime(p.LastUpdated()),
	}
}

// NewPageResource wraps p as a JSON:API resource.
func NewPageResource(p page.Page) *jsonapi.Resource {
	return jsonapi.NewResource(PageType, strconv.FormatInt(p.ID(), 10), NewPageAttributes(p))
}

// NewPageList converts pages in order.
func NewPageList(pages []page.Page) []*jsonapi.Resource {
	out := make([]*jsonapi.Resource, len(pages))
	for i, p := range pages {
		out[i] = NewPageResource(p)
	}
	return out
}
