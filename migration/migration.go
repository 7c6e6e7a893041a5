// Package migration applies the database schema. Every statement is
// idempotent, so it runs on each start.
package migration

import (
	"context"
	_ "embed"
	"fmt"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schema string

func Schema() string {
	return schema
}

func Run(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(schema).Error; err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
