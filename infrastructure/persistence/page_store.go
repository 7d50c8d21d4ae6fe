package persistence

import (
	"context"
	"fmt"

	"github.com/helixml/wikitree/domain/page"
	"github.com/helixml/wikitree/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageStore implements page.Store using GORM.
type PageStore struct {
	database.Repository[page.Page, PageModel]
}

// NewPageStore creates a new PageStore.
func NewPageStore(db database.Database) PageStore {
	return PageStore{
		Repository: database.NewRepository[page.Page, PageModel](db, PageMapper{}, "page"),
	}
}

var upsertPage = clause.OnConflict{
	Columns:   []clause.Column{{Name: "owner_id"}, {Name: "slug"}},
	DoUpdates: clause.AssignmentColumns([]string{"title", "priority", "public", "last_updated"}),
}

// Save creates a page or updates the existing page with the same owner and slug.
func (s PageStore) Save(ctx context.Context, p page.Page) (page.Page, error) {
	if err := page.ValidateSlug(p.Slug()); err != nil {
		return page.Page{}, fmt.Errorf("save page: %w", err)
	}
	saved, err := s.save(s.DB(ctx), p)
	if err != nil {
		return page.Page{}, fmt.Errorf("save page: %w", err)
	}
	return saved, nil
}

// SaveAll saves every page in a single transaction. Nothing is written if any
// page fails validation or storage.
func (s PageStore) SaveAll(ctx context.Context, pages []page.Page) ([]page.Page, error) {
	for _, p := range pages {
		if err := page.ValidateSlug(p.Slug()); err != nil {
			return nil, fmt.Errorf("save pages: %w", err)
		}
	}

	saved, err := database.WithTransactionResult(ctx, s.Database(), func(tx *gorm.DB) ([]page.Page, error) {
		result := make([]page.Page, 0, len(pages))
		for _, p := range pages {
			sp, err := s.save(tx, p)
			if err != nil {
				return nil, err
			}
			result = append(result, sp)
		}
		return result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("save pages: %w", err)
	}
	return saved, nil
}

func (s PageStore) save(db *gorm.DB, p page.Page) (page.Page, error) {
	model := s.Mapper().ToModel(p)
	model.ID = 0
	if err := db.Clauses(upsertPage).Create(&model).Error; err != nil {
		return page.Page{}, err
	}

	// The conflict path does not report the existing row's id on every driver.
	var stored PageModel
	err := db.Where("owner_id = ? AND slug = ?", model.OwnerID, model.Slug).First(&stored).Error
	if err != nil {
		return page.Page{}, err
	}
	return s.Mapper().ToDomain(stored), nil
}
