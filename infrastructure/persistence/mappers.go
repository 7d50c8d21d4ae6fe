package persistence

import "github.com/helixml/wikitree/domain/page"

// PageMapper maps between page.Page and PageModel.
type PageMapper struct{}

// ToDomain converts a PageModel to a page.Page.
func (PageMapper) ToDomain(e PageModel) page.Page {
	return page.ReconstructPage(e.ID, e.OwnerID, e.Slug, e.Title, e.Priority, e.Public, e.LastUpdated)
}

// ToModel converts a page.Page to a PageModel.
func (PageMapper) ToModel(p page.Page) PageModel {
	return PageModel{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Slug:        p.Slug(),
		Title:       p.Title(),
		Priority:    p.Priority(),
		Public:      p.Public(),
		LastUpdated: p.LastUpdated(),
	}
}

// OwnerMapper maps between page.Owner and UserModel.
type OwnerMapper struct{}

// ToDomain converts a UserModel to a page.Owner.
func (OwnerMapper) ToDomain(e UserModel) page.Owner {
	return page.NewOwner(e.ID, e.Name)
}

// ToModel converts a page.Owner to a UserModel. The raw name is stored so
// that the id fallback is never persisted.
func (OwnerMapper) ToModel(o page.Owner) UserModel {
	name := o.Name()
	if name == o.ID() {
		name = ""
	}
	return UserModel{ID: o.ID(), Name: name}
}
