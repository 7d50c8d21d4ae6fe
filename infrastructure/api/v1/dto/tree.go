package dto

import (
	"github.com/helixml/wikitree/domain/tree"
	"github.com/helixml/wikitree/infrastructure/api/jsonapi"
)

// TreeType is the JSON:API resource type for navigation trees.
const TreeType = "trees"

// TreeAttributes is one owner's rendered navigation.
type TreeAttributes struct {
	OwnerName string       `json:"owner_name,omitempty"`
	OwnerView bool         `json:"owner_view"`
	Pages     int          `json:"pages"`
	Entries   []tree.Entry `json:"entries"`
}

// NewTreeResource wraps nav as a JSON:API resource identified by its owner.
func NewTreeResource(nav tree.Navigation, ownerName string) *jsonapi.Resource {
	entries := nav.Entries
	if entries == nil {
		entries = []tree.Entry{}
	}
	return jsonapi.NewResource(TreeType, nav.OwnerID, TreeAttributes{
		OwnerName: ownerName,
		OwnerView: nav.OwnerView,
		Pages:     nav.Len(),
		Entries:   entries,
	})
}
