package service

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-admin-api/internal/dto"
	"ecommerce-admin-api/internal/model"
	"ecommerce-admin-api/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPriceFilter = errors.New("invalid filter criteria")
	ErrNoProductsMatched  = errors.New("no products found matching the criteria")
)

const priceUpdatePreviewLimit = 100

type PricingService interface {
	// ApplyIncrease multiplies price (and offerPrice, for products with an
	// active offer) by 1+percentage/100 for every product matching the
	// filter; returns how many products were updated.
	ApplyIncrease(ctx context.Context, req *dto.PriceUpdateRequest) (int, error)
	PreviewCount(ctx context.Context, filters dto.PriceUpdateFilters) (int64, error)
	PreviewProducts(ctx context.Context, filters dto.PriceUpdateFilters) ([]*model.Product, error)
}

type pricingServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewPricingService(productRepo repository.ProductRepository) PricingService {
	return &pricingServiceImpl{
		productRepo: productRepo,
	}
}

func (s *pricingServiceImpl) ApplyIncrease(ctx context.Context, req *dto.PriceUpdateRequest) (int, error) {
	filter, err := updateFilter(req)
	if err != nil {
		return 0, err
	}

	products, err := s.productRepo.FindForPriceUpdate(ctx, filter, 0)
	if err != nil {
		return 0, fmt.Errorf("load products: %w", err)
	}
	if len(products) == 0 {
		return 0, ErrNoProductsMatched
	}

	multiplier := decimal.NewFromFloat(1 + req.Percentage/100)
	for _, product := range products {
		newPrice := product.Price.Mul(multiplier)

		var newOfferPrice *decimal.Decimal
		if product.HasOffer && product.OfferPrice != nil {
			p := product.OfferPrice.Mul(multiplier)
			newOfferPrice = &p
		}

		if err := s.productRepo.UpdatePrices(ctx, product.ID, newPrice, newOfferPrice); err != nil {
			return 0, fmt.Errorf("update prices for product %s: %w", product.ID, err)
		}
	}

	return len(products), nil
}

func (s *pricingServiceImpl) PreviewCount(ctx context.Context, filters dto.PriceUpdateFilters) (int64, error) {
	return s.productRepo.CountFiltered(ctx, previewFilter(filters))
}

func (s *pricingServiceImpl) PreviewProducts(ctx context.Context, filters dto.PriceUpdateFilters) ([]*model.Product, error) {
	return s.productRepo.FindForPriceUpdate(ctx, previewFilter(filters), priceUpdatePreviewLimit)
}

// updateFilter admits exactly the filter field named by updateType.
func updateFilter(req *dto.PriceUpdateRequest) (repository.ProductFilter, error) {
	f := repository.ProductFilter{}
	switch {
	case req.UpdateType == "category" && req.Filters.CategoryID != "":
		f.CategoryID = req.Filters.CategoryID
	case req.UpdateType == "subcategory" && req.Filters.SubcategoryID != "":
		f.SubcategoryID = req.Filters.SubcategoryID
	case req.UpdateType == "provider" && req.Filters.ProviderID != "":
		f.ProviderID = req.Filters.ProviderID
	case req.UpdateType == "product" && req.Filters.ProductID != "":
		f.ProductID = req.Filters.ProductID
	default:
		return f, ErrInvalidPriceFilter
	}

	return f, nil
}

func previewFilter(filters dto.PriceUpdateFilters) repository.ProductFilter {
	return repository.ProductFilter{
		CategoryID:    filters.CategoryID,
		SubcategoryID: filters.SubcategoryID,
		ProviderID:    filters.ProviderID,
		ProductID:     filters.ProductID,
	}
}
