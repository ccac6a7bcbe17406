package repository

import (
	"context"

	"gorm.io/gorm"

	"studyhub/internal/model"
)

// CategoryRepository reads the global category list. Categories are not owned
// and clients cannot modify them.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository builds a GORM-backed category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
