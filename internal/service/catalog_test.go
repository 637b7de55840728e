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

func newCatalogService(t *testing.T) (CatalogService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewSubcategoryRepository(db),
		repository.NewProviderRepository(db),
		repository.NewColorRepository(db),
		repository.NewBillboardRepository(db),
		repository.NewPostRepository(db),
	)

	return svc, db
}

func TestCreateSubcategoryRequiresExistingCategory(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	err := svc.CreateSubcategory(ctx, &model.Subcategory{
		Name:       "Rifles",
		CategoryID: "missing-category",
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("err = %v, want ErrCategoryNotFound", err)
	}

	if err := svc.CreateCategory(ctx, &model.Category{Name: "Weapons"}); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	categories, err := svc.ListCategories(ctx)
	if err != nil || len(categories) != 1 {
		t.Fatalf("ListCategories: %v (%d)", err, len(categories))
	}

	err = svc.CreateSubcategory(ctx, &model.Subcategory{
		Name:       "Rifles",
		CategoryID: categories[0].ID,
	})
	if err != nil {
		t.Fatalf("CreateSubcategory: %v", err)
	}
}

func TestCreateBillboardEnforcesCap(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := svc.CreateBillboard(ctx, &model.Billboard{
			Title:    "Promo",
			ImageURL: "https://img.test/banner.jpg",
		})
		if err != nil {
			t.Fatalf("CreateBillboard %d: %v", i+1, err)
		}
	}

	err := svc.CreateBillboard(ctx, &model.Billboard{
		Title:    "One too many",
		ImageURL: "https://img.test/extra.jpg",
	})
	if !errors.Is(err, ErrBillboardLimit) {
		t.Fatalf("err = %v, want ErrBillboardLimit", err)
	}
}

func TestCreatePostEnforcesCap(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := svc.CreatePost(ctx, &model.Post{
			ImageURL:    "https://img.test/post.jpg",
			Link:        "https://instagram.com/p/x",
			Description: "post",
		})
		if err != nil {
			t.Fatalf("CreatePost %d: %v", i+1, err)
		}
	}

	err := svc.CreatePost(ctx, &model.Post{
		ImageURL:    "https://img.test/extra.jpg",
		Link:        "https://instagram.com/p/y",
		Description: "extra",
	})
	if !errors.Is(err, ErrPostLimit) {
		t.Fatalf("err = %v, want ErrPostLimit", err)
	}

	// deleting one frees a slot
	posts, err := svc.ListPosts(ctx)
	if err != nil || len(posts) != 3 {
		t.Fatalf("ListPosts: %v (%d)", err, len(posts))
	}
	if err := svc.DeletePost(ctx, posts[0].ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	err = svc.CreatePost(ctx, &model.Post{
		ImageURL:    "https://img.test/replacement.jpg",
		Link:        "https://instagram.com/p/z",
		Description: "replacement",
	})
	if err != nil {
		t.Fatalf("CreatePost after delete: %v", err)
	}
}

func TestUpdateProductReplacesImages(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &dto.CreateProductRequest{
		Name:          "Scope",
		NameTag:       "scope",
		Description:   "4x32",
		Price:         decimal.NewFromInt(500),
		Stock:         3,
		CategoryID:    "cat-1",
		SubcategoryID: "sub-1",
		Images: []dto.ImagePayload{
			{URL: "https://img.test/a.jpg"},
			{URL: "https://img.test/b.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	updated, err := svc.UpdateProduct(ctx, created.ID, &dto.CreateProductRequest{
		Name:          "Scope",
		NameTag:       "scope",
		Description:   "4x32",
		Price:         decimal.NewFromInt(550),
		Stock:         3,
		CategoryID:    "cat-1",
		SubcategoryID: "sub-1",
		Images: []dto.ImagePayload{
			{URL: "https://img.test/c.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	if len(updated.Images) != 1 || updated.Images[0].URL != "https://img.test/c.jpg" {
		t.Errorf("images = %+v, want exactly the submitted set", updated.Images)
	}
	if !updated.Price.Equal(decimal.NewFromInt(550)) {
		t.Errorf("price = %s, want 550", updated.Price)
	}

	var count int64
	db.Model(&model.Image{}).Where("product_id = ?", created.ID).Count(&count)
	if count != 1 {
		t.Errorf("image rows = %d, want 1", count)
	}
}

func TestDeleteProductUnknown(t *testing.T) {
	svc, _ := newCatalogService(t)

	err := svc.DeleteProduct(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
