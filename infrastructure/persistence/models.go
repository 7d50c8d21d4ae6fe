package persistence

import "time"

// PageModel is the GORM model for the pages table.
type PageModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID     string    `gorm:"column:owner_id;size:64;not null;uniqueIndex:idx_pages_owner_slug,priority:1"`
	Slug        string    `gorm:"column:slug;size:512;not null;uniqueIndex:idx_pages_owner_slug,priority:2"`
	Title       string    `gorm:"column:title;size:255;not null"`
	Priority    int       `gorm:"column:priority;not null;default:0"`
	Public      bool      `gorm:"column:public;not null;default:false;index"`
	LastUpdated time.Time `gorm:"column:last_updated;not null;index"`
}

// TableName returns the table name.
func (PageModel) TableName() string { return "pages" }

// UserModel holds owner display names.
type UserModel struct {
	ID   string `gorm:"column:id;primaryKey;size:64"`
	Name string `gorm:"column:name;size:255"`
}

// TableName returns the table name.
func (UserModel) TableName() string { return "users" }
