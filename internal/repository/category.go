package repository

import (
	"context"

	"ecommerce-admin-api/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, categoryID string) (*model.Category, error)
	FindAll(ctx context.Context) ([]*model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, categoryID string) error
}

type categoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepoImpl{
		db: db,
	}
}

func (r *categoryRepoImpl) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepoImpl) FindByID(ctx context.Context, categoryID string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Where("id = ?", categoryID).
		First(&category).Error

	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepoImpl) FindAll(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&categories).Error

	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepoImpl) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepoImpl) Delete(ctx context.Context, categoryID string) error {
	result := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", categoryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *model.Subcategory) error
	FindByID(ctx context.Context, subcategoryID string) (*model.Subcategory, error)
	FindAll(ctx context.Context, categoryID string) ([]*model.Subcategory, error)
	Update(ctx context.Context, subcategory *model.Subcategory) error
	Delete(ctx context.Context, subcategoryID string) error
}

type subcategoryRepoImpl struct {
	db *gorm.DB
}

func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepository {
	return &subcategoryRepoImpl{
		db: db,
	}
}

func (r *subcategoryRepoImpl) Create(ctx context.Context, subcategory *model.Subcategory) error {
	return r.db.WithContext(ctx).Create(subcategory).Error
}

func (r *subcategoryRepoImpl) FindByID(ctx context.Context, subcategoryID string) (*model.Subcategory, error) {
	var subcategory model.Subcategory
	err := r.db.WithContext(ctx).
		Where("id = ?", subcategoryID).
		First(&subcategory).Error

	if err != nil {
		return nil, err
	}

	return &subcategory, nil
}

func (r *subcategoryRepoImpl) FindAll(ctx context.Context, categoryID string) ([]*model.Subcategory, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	var subcategories []*model.Subcategory
	if err := q.Find(&subcategories).Error; err != nil {
		return nil, err
	}

	return subcategories, nil
}

func (r *subcategoryRepoImpl) Update(ctx context.Context, subcategory *model.Subcategory) error {
	return r.db.WithContext(ctx).Save(subcategory).Error
}

func (r *subcategoryRepoImpl) Delete(ctx context.Context, subcategoryID string) error {
	result := r.db.WithContext(ctx).Delete(&model.Subcategory{}, "id = ?", subcategoryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
