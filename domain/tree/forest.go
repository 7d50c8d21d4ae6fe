package tree

import (
	"slices"
	"strings"

	"github.com/helixml/wikitree/domain/page"
)

// Forest holds one tree per owner, for views spanning every user's wiki.
type Forest struct {
	trees  []Tree
	owners map[string]page.Owner
}

// NewForest orders trees by owner display name and drops empty ones.
// Owners missing from owners are labelled by their identifier.
func NewForest(trees []Tree, owners []page.Owner) Forest {
	byID := make(map[string]page.Owner, len(owners))
	for _, o := range owners {
		byID[o.ID()] = o
	}

	kept := make([]Tree, 0, len(trees))
	for _, t := range trees {
		if t.Empty() {
			continue
		}
		if _, ok := byID[t.OwnerID()]; !ok {
			byID[t.OwnerID()] = page.NewOwner(t.OwnerID(), "")
		}
		kept = append(kept, t)
	}

	slices.SortFunc(kept, func(a, b Tree) int {
		na, nb := byID[a.OwnerID()].Name(), byID[b.OwnerID()].Name()
		if c := strings.Compare(strings.ToLower(na), strings.ToLower(nb)); c != 0 {
			return c
		}
		return strings.Compare(a.OwnerID(), b.OwnerID())
	})

	return Forest{trees: kept, owners: byID}
}

// Trees returns the non-empty trees in display order.
func (f Forest) Trees() []Tree {
	result := make([]Tree, len(f.trees))
	copy(result, f.trees)
	return result
}

// Owner returns the owner of a tree in the forest.
func (f Forest) Owner(ownerID string) page.Owner {
	if o, ok := f.owners[ownerID]; ok {
		return o
	}
	return page.NewOwner(ownerID, "")
}

// Empty reports whether no owner has a visible page.
func (f Forest) Empty() bool { return len(f.trees) == 0 }

// GroupByOwner partitions pages by owner, keeping each owner's pages in
// input order.
func GroupByOwner(pages []page.Page) map[string][]page.Page {
	groups := make(map[string][]page.Page)
	for _, p := range pages {
		groups[p.OwnerID()] = append(groups[p.OwnerID()], p)
	}
	return groups
}
