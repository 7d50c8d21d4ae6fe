package persistence

import (
	"context"
	"fmt"

	"github.com/helixml/wikitree/domain/page"
	"github.com/helixml/wikitree/internal/database"
	"gorm.io/gorm/clause"
)

// OwnerStore implements page.OwnerStore using GORM.
type OwnerStore struct {
	database.Repository[page.Owner, UserModel]
}

// NewOwnerStore creates a new OwnerStore.
func NewOwnerStore(db database.Database) OwnerStore {
	return OwnerStore{
		Repository: database.NewRepository[page.Owner, UserModel](db, OwnerMapper{}, "owner"),
	}
}

// Save creates an owner or renames an existing one.
func (s OwnerStore) Save(ctx context.Context, o page.Owner) (page.Owner, error) {
	model := s.Mapper().ToModel(o)
	err := s.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&model).Error
	if err != nil {
		return page.Owner{}, fmt.Errorf("save owner: %w", err)
	}
	return s.Mapper().ToDomain(model), nil
}
