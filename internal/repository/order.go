package repository

import (
	"context"
	"encoding/json"

	"ecommerce-admin-api/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	FindWithItems(ctx context.Context, tx *gorm.DB, orderID string) (*model.Order, error)
	FindAll(ctx context.Context) ([]*model.Order, error)
	// MarkPaid flips is_paid false→true in a single conditional UPDATE and
	// reports whether this call performed the transition.
	MarkPaid(ctx context.Context, tx *gorm.DB, orderID string) (bool, error)
	SetUnpaid(ctx context.Context, tx *gorm.DB, orderID string) error
	UpdateFormData(ctx context.Context, orderID string, formData json.RawMessage) error
	Delete(ctx context.Context, orderID string) (*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindWithItems(ctx context.Context, tx *gorm.DB, orderID string) (*model.Order, error) {
	var order model.Order
	err := tx.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindAll(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("OrderItems.Product.Images").
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, tx *gorm.DB, orderID string) (bool, error) {
	result := tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND is_paid = ?", orderID, false).
		Update("is_paid", true)

	return result.RowsAffected > 0, result.Error
}

func (r *orderRepoImpl) SetUnpaid(ctx context.Context, tx *gorm.DB, orderID string) error {
	return tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("is_paid", false).Error
}

func (r *orderRepoImpl) UpdateFormData(ctx context.Context, orderID string, formData json.RawMessage) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("form_data", formData)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *orderRepoImpl) Delete(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := r.FindWithItems(ctx, r.db, orderID)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, "id = ?", orderID).Error
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
