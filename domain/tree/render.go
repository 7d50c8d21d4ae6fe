package tree

import "time"

// Entry is one rendered navigation item.
type Entry struct {
	Title       string    `json:"title"`
	Segment     string    `json:"segment"`
	Path        string    `json:"path"`
	Link        bool      `json:"link"`
	Private     bool      `json:"private,omitempty"`
	Priority    int       `json:"priority"`
	LastUpdated time.Time `json:"last_updated,omitzero"`
	Children    []Entry   `json:"children,omitempty"`
}

// Folder reports whether the entry is a non-linking grouping label.
func (e Entry) Folder() bool { return !e.Link }

// Navigation is the nested, ordered navigation structure of one tree.
type Navigation struct {
	OwnerID   string  `json:"owner_id"`
	OwnerView bool    `json:"owner_view"`
	Entries   []Entry `json:"entries"`
}

// Empty reports whether there is nothing to navigate.
func (n Navigation) Empty() bool { return len(n.Entries) == 0 }

// Len returns the number of linking entries at any depth.
func (n Navigation) Len() int { return countLinks(n.Entries) }

func countLinks(entries []Entry) int {
	total := 0
	for _, e := range entries {
		if e.Link {
			total++
		}
		total += countLinks(e.Children)
	}
	return total
}

// Render converts t into a navigation structure.
//
// Render does not filter: when the viewer is not the owner, t must have been
// built with WithPublicOnly. viewerIsOwner only controls whether private
// pages are marked as such. Real pages render as links to their full path,
// synthetic nodes as grouping labels.
func Render(t Tree, viewerIsOwner bool) Navigation {
	return Navigation{
		OwnerID:   t.OwnerID(),
		OwnerView: viewerIsOwner,
		Entries:   renderChildren(t.Root(), viewerIsOwner),
	}
}

func renderChildren(n *Node, viewerIsOwner bool) []Entry {
	children := n.Children()
	entries := make([]Entry, 0, len(children))
	for _, c := range children {
		e := Entry{
			Title:    c.Title(),
			Segment:  c.Segment(),
			Path:     c.FullPath(),
			Priority: c.Priority(),
			Children: renderChildren(c, viewerIsOwner),
		}
		if p, ok := c.Page(); ok {
			e.Link = true
			e.LastUpdated = p.LastUpdated()
			e.Private = viewerIsOwner && !p.Public()
		}
		entries = append(entries, e)
	}
	return entries
}
