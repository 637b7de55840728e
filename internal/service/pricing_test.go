package service

import (
	"context"
	"errors"
	"testing"

	"ecommerce-admin-api/internal/dto"
	"ecommerce-admin-api/internal/model"
	"ecommerce-admin-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newPricingService(t *testing.T) (PricingService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewPricingService(repository.NewProductRepository(db)), db
}

func loadProduct(t *testing.T, db *gorm.DB, id string) *model.Product {
	t.Helper()

	var product model.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}

	return &product
}

func TestApplyIncreaseByCategory(t *testing.T) {
	svc, db := newPricingService(t)

	inCategory := seedProduct(t, db, 100, 5)
	withOffer := seedProduct(t, db, 200, 5)
	offer := decimal.NewFromInt(150)
	withOffer.HasOffer = true
	withOffer.OfferPrice = &offer
	if err := db.Save(withOffer).Error; err != nil {
		t.Fatalf("save offer: %v", err)
	}

	other := seedProduct(t, db, 100, 5)
	other.CategoryID = "cat-other"
	if err := db.Save(other).Error; err != nil {
		t.Fatalf("save other: %v", err)
	}

	count, err := svc.ApplyIncrease(context.Background(), &dto.PriceUpdateRequest{
		UpdateType: "category",
		Percentage: 10,
		Filters:    dto.PriceUpdateFilters{CategoryID: "cat-1"},
	})
	if err != nil {
		t.Fatalf("ApplyIncrease: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	if got := loadProduct(t, db, inCategory.ID); !got.Price.Equal(decimal.NewFromInt(110)) {
		t.Errorf("price = %s, want 110", got.Price)
	}

	got := loadProduct(t, db, withOffer.ID)
	if !got.Price.Equal(decimal.NewFromInt(220)) {
		t.Errorf("price = %s, want 220", got.Price)
	}
	if got.OfferPrice == nil || !got.OfferPrice.Equal(decimal.NewFromInt(165)) {
		t.Errorf("offer price = %v, want 165", got.OfferPrice)
	}

	// outside the filter: untouched
	if got := loadProduct(t, db, other.ID); !got.Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("price = %s, want 100", got.Price)
	}
}

func TestApplyIncreaseSingleProduct(t *testing.T) {
	svc, db := newPricingService(t)

	target := seedProduct(t, db, 100, 5)
	sibling := seedProduct(t, db, 100, 5)

	count, err := svc.ApplyIncrease(context.Background(), &dto.PriceUpdateRequest{
		UpdateType: "product",
		Percentage: 25,
		Filters:    dto.PriceUpdateFilters{ProductID: target.ID},
	})
	if err != nil {
		t.Fatalf("ApplyIncrease: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	if got := loadProduct(t, db, target.ID); !got.Price.Equal(decimal.NewFromInt(125)) {
		t.Errorf("target price = %s, want 125", got.Price)
	}
	if got := loadProduct(t, db, sibling.ID); !got.Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("sibling price = %s, want 100", got.Price)
	}
}

func TestApplyIncreaseFilterMustMatchUpdateType(t *testing.T) {
	svc, _ := newPricingService(t)

	_, err := svc.ApplyIncrease(context.Background(), &dto.PriceUpdateRequest{
		UpdateType: "category",
		Percentage: 10,
		Filters:    dto.PriceUpdateFilters{ProviderID: "prov-1"},
	})
	if !errors.Is(err, ErrInvalidPriceFilter) {
		t.Fatalf("err = %v, want ErrInvalidPriceFilter", err)
	}
}

func TestApplyIncreaseNoMatches(t *testing.T) {
	svc, _ := newPricingService(t)

	_, err := svc.ApplyIncrease(context.Background(), &dto.PriceUpdateRequest{
		UpdateType: "category",
		Percentage: 10,
		Filters:    dto.PriceUpdateFilters{CategoryID: "empty-cat"},
	})
	if !errors.Is(err, ErrNoProductsMatched) {
		t.Fatalf("err = %v, want ErrNoProductsMatched", err)
	}
}

func TestPreviewCount(t *testing.T) {
	svc, db := newPricingService(t)

	seedProduct(t, db, 100, 5)
	seedProduct(t, db, 200, 5)

	archived := seedProduct(t, db, 300, 5)
	archived.IsArchived = true
	if err := db.Save(archived).Error; err != nil {
		t.Fatalf("save archived: %v", err)
	}

	count, err := svc.PreviewCount(context.Background(), dto.PriceUpdateFilters{CategoryID: "cat-1"})
	if err != nil {
		t.Fatalf("PreviewCount: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (archived products excluded)", count)
	}
}
