package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/helixml/wikitree/domain/repository"
	"gorm.io/gorm"
)

// ErrNotFound indicates the requested entity was not found.
var ErrNotFound = errors.New("entity not found")

// EntityMapper maps between domain and database model types.
type EntityMapper[D any, E any] interface {
	ToDomain(entity E) D
	ToModel(domain D) E
}

// Repository provides generic persistence operations driven by
// repository.Option queries.
type Repository[D any, E any] struct {
	db     Database
	mapper EntityMapper[D, E]
	label  string
}

// NewRepository creates a new Repository.
func NewRepository[D any, E any](db Database, mapper EntityMapper[D, E], label string) Repository[D, E] {
	return Repository[D, E]{db: db, mapper: mapper, label: label}
}

// Find retrieves entities matching the given options.
func (r Repository[D, E]) Find(ctx context.Context, options ...repository.Option) ([]D, error) {
	var entities []E
	db := ApplyOptions(r.db.Session(ctx).Model(new(E)), options...)
	if err := db.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("find %s: %w", r.label, err)
	}

	domains := make([]D, len(entities))
	for i, entity := range entities {
		domains[i] = r.mapper.ToDomain(entity)
	}
	return domains, nil
}

// FindOne retrieves a single entity matching the given options.
func (r Repository[D, E]) FindOne(ctx context.Context, options ...repository.Option) (D, error) {
	var (
		entity E
		zero   D
	)
	db := ApplyOptions(r.db.Session(ctx), options...)
	if err := db.First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("%w: %s", ErrNotFound, r.label)
		}
		return zero, fmt.Errorf("find one %s: %w", r.label, err)
	}
	return r.mapper.ToDomain(entity), nil
}

// Exists checks if any entity matches the given options.
func (r Repository[D, E]) Exists(ctx context.Context, options ...repository.Option) (bool, error) {
	n, err := r.Count(ctx, options...)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the number of entities matching the given options.
func (r Repository[D, E]) Count(ctx context.Context, options ...repository.Option) (int64, error) {
	var count int64
	db := ApplyConditions(r.db.Session(ctx).Model(new(E)), options...)
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", r.label, err)
	}
	return count, nil
}

// DeleteBy removes entities matching the given options. At least one
// condition is required so that an empty option list never truncates the table.
func (r Repository[D, E]) DeleteBy(ctx context.Context, options ...repository.Option) error {
	q := repository.Build(options...)
	if len(q.Conditions()) == 0 && len(q.Clauses()) == 0 {
		return fmt.Errorf("delete %s: no conditions given", r.label)
	}
	db := ApplyConditions(r.db.Session(ctx), options...)
	if err := db.Delete(new(E)).Error; err != nil {
		return fmt.Errorf("delete %s: %w", r.label, err)
	}
	return nil
}

// DB returns a GORM session bound to ctx.
func (r Repository[D, E]) DB(ctx context.Context) *gorm.DB {
	return r.db.Session(ctx)
}

// Database returns the connection the repository was built on.
func (r Repository[D, E]) Database() Database {
	return r.db
}

// Mapper returns the entity mapper.
func (r Repository[D, E]) Mapper() EntityMapper[D, E] {
	return r.mapper
}
