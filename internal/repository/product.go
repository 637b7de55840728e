package repository

import (
	"context"

	"ecommerce-admin-api/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductFilter struct {
	CategoryID    string
	SubcategoryID string
	ProviderID    string
	ProductID     string
	FeaturedOnly  bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error)
	FindFiltered(ctx context.Context, filter ProductFilter) ([]*model.Product, error)
	FindForPriceUpdate(ctx context.Context, filter ProductFilter, limit int) ([]*model.Product, error)
	CountFiltered(ctx context.Context, filter ProductFilter) (int64, error)
	Update(ctx context.Context, product *model.Product) error
	UpdatePrices(ctx context.Context, productID string, price decimal.Decimal, offerPrice *decimal.Decimal) error
	Delete(ctx context.Context, productID string) error
	// DecrementStock subtracts quantity from stock with a floor of zero.
	// Products already at zero stock are left untouched.
	DecrementStock(ctx context.Context, tx *gorm.DB, productID string, quantity int) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Images").
		Preload("Category").
		Preload("Subcategory").
		Preload("Provider").
		Preload("Color").
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindFiltered(ctx context.Context, filter ProductFilter) ([]*model.Product, error) {
	var products []*model.Product
	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Preload("Images").
		Preload("Category").
		Preload("Subcategory").
		Preload("Provider").
		Preload("Color").
		Order("created_at DESC").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindForPriceUpdate(ctx context.Context, filter ProductFilter, limit int) ([]*model.Product, error) {
	var products []*model.Product
	q := r.applyFilter(r.db.WithContext(ctx), filter).
		Select("id", "name", "price", "has_offer", "offer_price", "provider_id", "category_id", "subcategory_id").
		Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) CountFiltered(ctx context.Context, filter ProductFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&model.Product{}), filter).
		Count(&count).Error

	return count, err
}

func (r *productRepoImpl) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// images are replaced wholesale on every update, mirroring the
		// dashboard form which always submits the full set
		if err := tx.Where("product_id = ?", product.ID).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		return tx.Save(product).Error
	})
}

func (r *productRepoImpl) UpdatePrices(ctx context.Context, productID string, price decimal.Decimal, offerPrice *decimal.Decimal) error {
	updates := map[string]interface{}{
		"price": price,
	}
	if offerPrice != nil {
		updates["offer_price"] = *offerPrice
	}

	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(updates).Error
}

func (r *productRepoImpl) Delete(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&model.Image{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Product{}, "id = ?", productID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *productRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, productID string, quantity int) error {
	return tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock > 0", productID).
		Update("stock", gorm.Expr(
			"CASE WHEN stock > ? THEN stock - ? ELSE 0 END", quantity, quantity,
		)).Error
}

func (r *productRepoImpl) applyFilter(q *gorm.DB, filter ProductFilter) *gorm.DB {
	q = q.Where("is_archived = ?", false)

	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SubcategoryID != "" {
		q = q.Where("subcategory_id = ?", filter.SubcategoryID)
	}
	if filter.ProviderID != "" {
		q = q.Where("provider_id = ?", filter.ProviderID)
	}
	if filter.ProductID != "" {
		q = q.Where("id = ?", filter.ProductID)
	}
	if filter.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}

	return q
}
