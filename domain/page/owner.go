package page

import "github.com/helixml/wikitree/domain/repository"

// Owner identifies the user a set of pages belongs to.
type Owner struct {
	id   string
	name string
}

// NewOwner creates a new Owner.
func NewOwner(id, name string) Owner {
	return Owner{id: id, name: name}
}

// ID returns the owner identifier.
func (o Owner) ID() string { return o.id }

// Name returns the display name, falling back to the identifier.
func (o Owner) Name() string {
	if o.name == "" {
		return o.id
	}
	return o.name
}

// WithUserIDs filters owner records by identifier.
func WithUserIDs(ids []string) repository.Option {
	return repository.WithConditionIn("id", ids)
}
