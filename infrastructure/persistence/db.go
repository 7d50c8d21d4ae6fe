// Package persistence provides the GORM-backed page store.
package persistence

import (
	"fmt"
	"strings"

	"github.com/helixml/wikitree/internal/database"
	"gorm.io/gorm"
)

func allModels() []any {
	return []any{&PageModel{}, &UserModel{}}
}

// AutoMigrate creates or updates the tables for every model.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// ValidateSchema verifies every model field has a corresponding column in
// the database. It returns an error listing any missing columns.
func ValidateSchema(db database.Database) error {
	gdb := db.GORM()
	migrator := gdb.Migrator()

	var missing []string
	for _, model := range allModels() {
		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parse model schema: %w", err)
		}

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return fmt.Errorf("get column types for %s: %w", stmt.Table, err)
		}

		actual := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			actual[ct.Name()] = true
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" || field.DBName == "-" {
				continue
			}
			if !actual[field.DBName] {
				missing = append(missing, stmt.Table+"."+field.DBName)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema validation failed, missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
