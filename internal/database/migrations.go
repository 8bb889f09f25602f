package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddIndexes creates indexes used by owner-scoped lookups. AutoMigrate covers
// columns declared with `index` tags; these are the composite ones.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"tags", "idx_tags_user_id_name", "user_id, name"},
		{"ingredients", "idx_ingredients_user_id_name", "user_id, name"},
		{"recipes", "idx_recipes_user_id_id", "user_id, id"},
		{"recipe_tags", "idx_recipe_tags_tag_id", "tag_id"},
		{"recipe_ingredients", "idx_recipe_ingredients_ingredient_id", "ingredient_id"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		zap.L().Info("created index", zap.String("index", idx.name), zap.String("table", idx.table))
	}

	return nil
}
