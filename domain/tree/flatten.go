package tree

import "github.com/helixml/wikitree/domain/page"

// NoLimit disables the Flatten limit. Any limit <= 0 behaves the same way.
const NoLimit = 0

// Walk visits every node below the root in tree order: depth-first
// pre-order with children in sibling order. depth is 1 for top-level nodes.
// Returning false from fn stops the walk.
func Walk(t Tree, fn func(n *Node, depth int) bool) {
	walk(t.Root(), 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	for _, c := range n.Children() {
		if !fn(c, depth+1) {
			return false
		}
		if !walk(c, depth+1, fn) {
			return false
		}
	}
	return true
}

// Flatten lists the pages of t in tree order. Synthetic nodes are traversed
// but never emitted. With a positive limit the traversal stops as soon as
// limit pages have been collected.
func Flatten(t Tree, limit int) []page.Page {
	capacity := t.Len()
	if limit > 0 && limit < capacity {
		capacity = limit
	}
	pages := make([]page.Page, 0, capacity)

	Walk(t, func(n *Node, _ int) bool {
		if p, ok := n.Page(); ok {
			pages = append(pages, p)
		}
		return limit <= 0 || len(pages) < limit
	})
	return pages
}
