package postgres

import (
	"context"

	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// ListActive returns active main categories with their active sub-categories.
func (repo *categoryRepository) ListActive(ctx context.Context) ([]*entity.MainCategory, error) {
	var mainModels []*model.MainCategoryModel

	if err := repo.db.WithContext(ctx).
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("display_order ASC, name ASC")
		}).
		Where("is_active = ?", true).
		Order("display_order ASC, title ASC").
		Find(&mainModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.MainCategory, 0, len(mainModels))
	for _, mainM := range mainModels {
		main := &entity.MainCategory{
			ID:            mainM.ID,
			Title:         mainM.Title,
			Slug:          mainM.Slug,
			PreviewCount:  mainM.PreviewCount,
			DisplayOrder:  mainM.DisplayOrder,
			IsActive:      mainM.IsActive,
			SubCategories: make([]*entity.SubCategory, 0, len(mainM.SubCategories)),
		}
		for _, sub := range mainM.SubCategories {
			main.SubCategories = append(main.SubCategories, &entity.SubCategory{
				ID:             sub.ID,
				MainCategoryID: sub.MainCategoryID,
				Name:           sub.Name,
				Slug:           sub.Slug,
				Icon:           sub.Icon,
				DisplayOrder:   sub.DisplayOrder,
				IsActive:       sub.IsActive,
			})
		}
		categories = append(categories, main)
	}

	return categories, nil
}
