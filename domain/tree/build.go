package tree

import (
	"errors"
	"fmt"

	"github.com/helixml/wikitree/domain/page"
)

var (
	// ErrDuplicatePath indicates two pages of one owner resolve to the same path.
	ErrDuplicatePath = errors.New("duplicate page path")

	// ErrOwnerMismatch indicates a page handed to Build belongs to another owner.
	ErrOwnerMismatch = errors.New("page owner mismatch")
)

type buildOptions struct {
	publicOnly bool
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithPublicOnly excludes private pages. Folders that end up leading only to
// private pages are pruned from the result.
func WithPublicOnly() BuildOption {
	return func(o *buildOptions) { o.publicOnly = true }
}

// Build constructs the tree for ownerID from an unordered page snapshot.
//
// Every page must belong to ownerID. A malformed slug fails with
// page.ErrInvalidSlug and two pages on the same path fail with
// ErrDuplicatePath; both are checked for private pages too, even when they
// are excluded by WithPublicOnly.
func Build(ownerID string, pages []page.Page, options ...BuildOption) (Tree, error) {
	var opts buildOptions
	for _, opt := range options {
		opt(&opts)
	}

	root := newNode("", "", ownerID)
	seen := make(map[string]struct{}, len(pages))
	attached := 0

	for i := range pages {
		p := pages[i]
		if p.OwnerID() != ownerID {
			return Tree{}, fmt.Errorf("%w: page %q belongs to %q, building for %q", ErrOwnerMismatch, p.Slug(), p.OwnerID(), ownerID)
		}

		segments, err := page.Segments(p.Slug())
		if err != nil {
			return Tree{}, fmt.Errorf("build tree for %q: %w", ownerID, err)
		}

		path := page.JoinSegments(segments)
		if _, dup := seen[path]; dup {
			return Tree{}, fmt.Errorf("%w: %q for owner %q", ErrDuplicatePath, path, ownerID)
		}
		seen[path] = struct{}{}

		node := root
		for _, seg := range segments {
			child, ok := node.children[seg]
			if !ok {
				childPath := seg
				if node.fullPath != "" {
					childPath = node.fullPath + page.Delimiter + seg
				}
				child = newNode(seg, childPath, ownerID)
				node.children[seg] = child
			}
			node = child
		}

		if opts.publicOnly && !p.Public() {
			continue
		}
		node.page = &p
		attached++
	}

	prune(root)

	return Tree{
		ownerID:    ownerID,
		root:       root,
		publicOnly: opts.publicOnly,
		pages:      attached,
	}, nil
}

// prune removes descendants of n that neither carry a page nor lead to one.
// It reports whether n itself should be kept.
func prune(n *Node) bool {
	for seg, child := range n.children {
		if !prune(child) {
			delete(n.children, seg)
		}
	}
	return n.page != nil || len(n.children) > 0
}
