package dto

import (
	"github.com/helixml/wikitree/application/service"
	"github.com/helixml/wikitree/domain/tree"
	"github.com/helixml/wikitree/infrastructure/api/jsonapi"
)

// ContextType is the JSON:API resource type for page contexts.
const ContextType = "page-contexts"

// NodeRef is a lightweight reference to a tree node.
type NodeRef struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	Link  bool   `json:"link"`
}

// ContextAttributes locates a path within its owner's tree.
type ContextAttributes struct {
	Path       string          `json:"path"`
	Title      string          `json:"title"`
	Page       *PageAttributes `json:"page,omitempty"`
	Breadcrumb []NodeRef       `json:"breadcrumb"`
	Previous   []NodeRef       `json:"previous"`
	Next       []NodeRef       `json:"next"`
	Children   []NodeRef       `json:"children"`
}

func refs(nodes []*tree.Node) []NodeRef {
	out := make([]NodeRef, len(nodes))
	for i, n := range nodes {
		out[i] = NodeRef{Path: n.FullPath(), Title: n.Title(), Link: !n.Synthetic()}
	}
	return out
}

// NewContextResource converts pc.
func NewContextResource(ownerID string, pc service.PageContext) *jsonapi.Resource {
	attrs := ContextAttributes{
		Path:       pc.Node.FullPath(),
		Title:      pc.Node.Title(),
		Breadcrumb: refs(pc.Breadcrumb),
		Previous:   refs(pc.Previous),
		Next:       refs(pc.Next),
		Children:   refs(pc.Node.Children()),
	}
	if p, ok := pc.Node.Page(); ok {
		pa := NewPageAttributes(p)
		attrs.Page = &pa
	}
	return jsonapi.NewResource(ContextType, ownerID+"/"+attrs.Path, attrs)
}
