package repository

import (
	"context"

	"ecommerce-admin-api/internal/model"

	"gorm.io/gorm"
)

type BillboardRepository interface {
	Create(ctx context.Context, billboard *model.Billboard) error
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*model.Billboard, error)
	FindByID(ctx context.Context, billboardID string) (*model.Billboard, error)
	Update(ctx context.Context, billboard *model.Billboard) error
	Delete(ctx context.Context, billboardID string) error
}

type billboardRepoImpl struct {
	db *gorm.DB
}

func NewBillboardRepository(db *gorm.DB) BillboardRepository {
	return &billboardRepoImpl{
		db: db,
	}
}

func (r *billboardRepoImpl) Create(ctx context.Context, billboard *model.Billboard) error {
	return r.db.WithContext(ctx).Create(billboard).Error
}

func (r *billboardRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Billboard{}).Count(&count).Error
	return count, err
}

func (r *billboardRepoImpl) FindAll(ctx context.Context, activeOnly bool) ([]*model.Billboard, error) {
	q := r.db.WithContext(ctx).Order("`order` ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var billboards []*model.Billboard
	if err := q.Find(&billboards).Error; err != nil {
		return nil, err
	}

	return billboards, nil
}

func (r *billboardRepoImpl) FindByID(ctx context.Context, billboardID string) (*model.Billboard, error) {
	var billboard model.Billboard
	err := r.db.WithContext(ctx).
		Where("id = ?", billboardID).
		First(&billboard).Error

	if err != nil {
		return nil, err
	}

	return &billboard, nil
}

func (r *billboardRepoImpl) Update(ctx context.Context, billboard *model.Billboard) error {
	return r.db.WithContext(ctx).Save(billboard).Error
}

func (r *billboardRepoImpl) Delete(ctx context.Context, billboardID string) error {
	result := r.db.WithContext(ctx).Delete(&model.Billboard{}, "id = ?", billboardID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	Delete(ctx context.Context, postID string) error
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepoImpl{
		db: db,
	}
}

func (r *postRepoImpl) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error
	return count, err
}

func (r *postRepoImpl) FindAll(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepoImpl) Delete(ctx context.Context, postID string) error {
	result := r.db.WithContext(ctx).Delete(&model.Post{}, "id = ?", postID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
