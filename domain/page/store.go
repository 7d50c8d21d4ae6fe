package page

import (
	"context"

	"github.com/helixml/wikitree/domain/repository"
)

// Store supplies page snapshots to the tree engine.
type Store interface {
	Find(ctx context.Context, options ...repository.Option) ([]Page, error)
	FindOne(ctx context.Context, options ...repository.Option) (Page, error)
	Count(ctx context.Context, options ...repository.Option) (int64, error)
	Save(ctx context.Context, p Page) (Page, error)
	SaveAll(ctx context.Context, pages []Page) ([]Page, error)
	DeleteBy(ctx context.Context, options ...repository.Option) error
}

// OwnerStore resolves owner display names.
type OwnerStore interface {
	Find(ctx context.Context, options ...repository.Option) ([]Owner, error)
	Save(ctx context.Context, o Owner) (Owner, error)
}
