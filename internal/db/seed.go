package db

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyhub/internal/model"
)

// DefaultCategories are inserted at startup when missing.
var DefaultCategories = []string{"Study", "Work", "Personal", "Health", "Reading"}

// CategorySeed is the YAML layout accepted by LoadCategoryNames.
type CategorySeed struct {
	Categories []string `yaml:"categories"`
}

// LoadCategoryNames reads category names from YAML, trimming blanks and duplicates.
func LoadCategoryNames(r io.Reader) ([]string, error) {
	var seed CategorySeed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode category seed: %w", err)
	}

	seen := make(map[string]struct{}, len(seed.Categories))
	names := make([]string, 0, len(seed.Categories))
	for _, name := range seed.Categories {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// SeedCategories inserts the named categories, leaving existing ones untouched.
// It returns how many rows were created.
func SeedCategories(ctx context.Context, db *gorm.DB, names []string) (int, error) {
	created := 0
	for _, name := range names {
		category := model.Category{Name: name}
		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&category)
		if res.Error != nil {
			return created, fmt.Errorf("seed category %q: %w", name, res.Error)
		}
		created += int(res.RowsAffected)
	}
	return created, nil
}
