// Package page provides the wiki page record consumed by the page tree.
package page

import "time"

// Page is an immutable snapshot of one wiki page's metadata.
// Pages are owned by exactly one user and identified within that user's
// wiki by a slash-delimited slug.
type Page struct {
	id          int64
	ownerID     string
	slug        string
	title       string
	priority    int
	public      bool
	lastUpdated time.Time
}

// NewPage creates a new, unsaved Page.
func NewPage(ownerID, slug, title string, priority int, public bool) Page {
	return Page{
		ownerID:     ownerID,
		slug:        slug,
		title:       title,
		priority:    priority,
		public:      public,
		lastUpdated: time.Now(),
	}
}

// ReconstructPage recreates a Page from persistence.
func ReconstructPage(
	id int64,
	ownerID, slug, title string,
	priority int,
	public bool,
	lastUpdated time.Time,
) Page {
	return Page{
		id:          id,
		ownerID:     ownerID,
		slug:        slug,
		title:       title,
		priority:    priority,
		public:      public,
		lastUpdated: lastUpdated,
	}
}

// ID returns the storage identifier, or 0 for an unsaved page.
func (p Page) ID() int64 { return p.id }

// OwnerID returns the owning user's identifier.
func (p Page) OwnerID() string { return p.ownerID }

// Slug returns the page's hierarchical identifier.
func (p Page) Slug() string { return p.slug }

// Title returns the display title.
func (p Page) Title() string { return p.title }

// Priority returns the manual sort key. Lower values sort first.
func (p Page) Priority() int { return p.priority }

// Public reports whether the page is visible to users other than its owner.
func (p Page) Public() bool { return p.public }

// LastUpdated returns when the page was last modified.
func (p Page) LastUpdated() time.Time { return p.lastUpdated }

// VisibleTo reports whether viewerID may see this page.
func (p Page) VisibleTo(viewerID string) bool {
	return p.public || (viewerID != "" && viewerID == p.ownerID)
}

// WithID returns a copy of the page with the storage identifier set.
func (p Page) WithID(id int64) Page {
	p.id = id
	return p
}

// WithLastUpdated returns a copy of the page with the modification time set.
func (p Page) WithLastUpdated(t time.Time) Page {
	p.lastUpdated = t
	return p
}
