package page

import "github.com/helixml/wikitree/domain/repository"

// WithOwner filters by the "owner_id" column.
func WithOwner(ownerID string) repository.Option {
	return repository.WithCondition("owner_id", ownerID)
}

// WithSlug filters by the "slug" column.
func WithSlug(slug string) repository.Option {
	return repository.WithCondition("slug", slug)
}

// WithPublic filters for pages visible to everyone.
func WithPublic() repository.Option {
	return repository.WithCondition("public", true)
}

// WithVisibleTo filters for pages that are public or owned by viewerID.
// An empty viewerID is anonymous and only sees public pages.
func WithVisibleTo(viewerID string) repository.Option {
	if viewerID == "" {
		return WithPublic()
	}
	return repository.WithWhere("(public = ? OR owner_id = ?)", true, viewerID)
}

// WithRecentFirst orders by modification time, newest first.
func WithRecentFirst() repository.Option {
	return repository.WithOrderDesc("last_updated")
}
