package repository

import (
	"context"

	"ecommerce-admin-api/internal/model"

	"gorm.io/gorm"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *model.Provider) error
	FindByID(ctx context.Context, providerID string) (*model.Provider, error)
	FindAll(ctx context.Context) ([]*model.Provider, error)
	Update(ctx context.Context, provider *model.Provider) error
	Delete(ctx context.Context, providerID string) error
}

type providerRepoImpl struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepoImpl{
		db: db,
	}
}

func (r *providerRepoImpl) Create(ctx context.Context, provider *model.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *providerRepoImpl) FindByID(ctx context.Context, providerID string) (*model.Provider, error) {
	var provider model.Provider
	err := r.db.WithContext(ctx).
		Where("id = ?", providerID).
		First(&provider).Error

	if err != nil {
		return nil, err
	}

	return &provider, nil
}

func (r *providerRepoImpl) FindAll(ctx context.Context) ([]*model.Provider, error) {
	var providers []*model.Provider
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&providers).Error

	if err != nil {
		return nil, err
	}

	return providers, nil
}

func (r *providerRepoImpl) Update(ctx context.Context, provider *model.Provider) error {
	return r.db.WithContext(ctx).Save(provider).Error
}

func (r *providerRepoImpl) Delete(ctx context.Context, providerID string) error {
	result := r.db.WithContext(ctx).Delete(&model.Provider{}, "id = ?", providerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

type ColorRepository interface {
	Create(ctx context.Context, color *model.Color) error
	FindAll(ctx context.Context) ([]*model.Color, error)
	Update(ctx context.Context, color *model.Color) error
	Delete(ctx context.Context, colorID string) error
}

type colorRepoImpl struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) ColorRepository {
	return &colorRepoImpl{
		db: db,
	}
}

func (r *colorRepoImpl) Create(ctx context.Context, color *model.Color) error {
	return r.db.WithContext(ctx).Create(color).Error
}

func (r *colorRepoImpl) FindAll(ctx context.Context) ([]*model.Color, error) {
	var colors []*model.Color
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&colors).Error

	if err != nil {
		return nil, err
	}

	return colors, nil
}

func (r *colorRepoImpl) Update(ctx context.Context, color *model.Color) error {
	return r.db.WithContext(ctx).Save(color).Error
}

func (r *colorRepoImpl) Delete(ctx context.Context, colorID string) error {
	result := r.db.WithContext(ctx).Delete(&model.Color{}, "id = ?", colorID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
