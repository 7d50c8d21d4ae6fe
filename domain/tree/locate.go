package tree

import "github.com/helixml/wikitree/domain/page"

// Find returns the node at path. Malformed paths are never found.
func (t Tree) Find(path string) (*Node, bool) {
	segments, err := page.Segments(path)
	if err != nil {
		return nil, false
	}
	node := t.Root()
	for _, seg := range segments {
		child, ok := node.Child(seg)
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// Breadcrumb returns the ancestors of the node at path from the top level
// down to its parent. It is empty for top-level and missing paths.
func (t Tree) Breadcrumb(path string) []*Node {
	if _, ok := t.Find(path); !ok {
		return nil
	}
	segments, _ := page.Segments(path)

	crumbs := make([]*Node, 0, len(segments)-1)
	node := t.Root()
	for _, seg := range segments[:len(segments)-1] {
		node, _ = node.Child(seg)
		crumbs = append(crumbs, node)
	}
	return crumbs
}

// Siblings returns the nodes sharing a parent with path, split into those
// ordered before it and those ordered after it.
func (t Tree) Siblings(path string) (prev, next []*Node) {
	node, ok := t.Find(path)
	if !ok {
		return nil, nil
	}

	parent := t.Root()
	if p := page.Parent(path); p != "" {
		parent, _ = t.Find(p)
	}

	before := true
	for _, c := range parent.Children() {
		if c == node {
			before = false
			continue
		}
		if before {
			prev = append(prev, c)
		} else {
			next = append(next, c)
		}
	}
	return prev, next
}
