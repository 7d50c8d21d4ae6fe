// Package tree builds the navigable page hierarchy implied by slash-delimited
// slugs.
//
// A Tree is a pure function of one owner's page snapshot. It is constructed
// by Build, never mutated afterwards, and discarded after use. Sibling order
// is not stored on the nodes; it is computed whenever children are read, so
// the same tree serves both Render and Flatten.
package tree

import "github.com/helixml/wikitree/domain/page"

// Node is one path segment within one owner's hierarchy.
// A node without a page is synthetic: it exists only to connect descendants.
type Node struct {
	segment  string
	fullPath string
	ownerID  string
	page     *page.Page
	children map[string]*Node
}

func newNode(segment, fullPath, ownerID string) *Node {
	return &Node{
		segment:  segment,
		fullPath: fullPath,
		ownerID:  ownerID,
		children: make(map[string]*Node),
	}
}

// Segment returns the path component this node represents.
func (n *Node) Segment() string { return n.segment }

// FullPath returns the segments from the root to this node joined by the
// slug delimiter. The root's full path is empty.
func (n *Node) FullPath() string { return n.fullPath }

// OwnerID returns the owner of the tree this node belongs to.
func (n *Node) OwnerID() string { return n.ownerID }

// Page returns the page attached at this exact path, if any.
func (n *Node) Page() (page.Page, bool) {
	if n.page == nil {
		return page.Page{}, false
	}
	return *n.page, true
}

// Synthetic reports whether the node is a folder with no page of its own.
func (n *Node) Synthetic() bool { return n.page == nil }

// Title returns the page title, or the segment for synthetic nodes.
func (n *Node) Title() string {
	if n.page == nil || n.page.Title() == "" {
		return n.segment
	}
	return n.page.Title()
}

// Priority returns the sort key used among siblings.
// Synthetic nodes use DefaultPriority.
func (n *Node) Priority() int {
	if n.page == nil {
		return DefaultPriority
	}
	return n.page.Priority()
}

// Child returns the direct child for segment.
func (n *Node) Child(segment string) (*Node, bool) {
	c, ok := n.children[segment]
	return c, ok
}

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// Children returns the direct children in sibling order.
func (n *Node) Children() []*Node {
	nodes := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		nodes = append(nodes, c)
	}
	return Order(nodes)
}

// Tree is the hierarchy of one owner's pages beneath a synthetic root.
type Tree struct {
	ownerID    string
	root       *Node
	publicOnly bool
	pages      int
}

// OwnerID returns the owner whose pages the tree contains.
func (t Tree) OwnerID() string { return t.ownerID }

// Root returns the synthetic root node.
func (t Tree) Root() *Node {
	if t.root == nil {
		return newNode("", "", t.ownerID)
	}
	return t.root
}

// PublicOnly reports whether private pages were excluded during construction.
func (t Tree) PublicOnly() bool { return t.publicOnly }

// Len returns the number of real pages in the tree.
func (t Tree) Len() int { return t.pages }

// Empty reports whether the tree has no pages.
func (t Tree) Empty() bool { return t.pages == 0 }
