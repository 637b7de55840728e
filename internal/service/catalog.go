package service

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-admin-api/internal/dto"
	"ecommerce-admin-api/internal/model"
	"ecommerce-admin-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrCategoryNotFound = errors.New("category does not exist")
	ErrBillboardLimit   = errors.New("maximum number of billboards (3) reached")
	ErrPostLimit        = errors.New("maximum number of posts (3) reached")
)

const contentEntryLimit = 3

// CatalogService fronts the dashboard CRUD screens. The endpoints behind it
// are field-mapping wrappers over the store; the only rules here are the
// subcategory parent check and the billboard/post entry caps.
type CatalogService interface {
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error)
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, productID string, req *dto.CreateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	CreateCategory(ctx context.Context, category *model.Category) error
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error

	CreateSubcategory(ctx context.Context, subcategory *model.Subcategory) error
	ListSubcategories(ctx context.Context, categoryID string) ([]*model.Subcategory, error)
	UpdateSubcategory(ctx context.Context, subcategory *model.Subcategory) error
	DeleteSubcategory(ctx context.Context, subcategoryID string) error

	CreateProvider(ctx context.Context, provider *model.Provider) error
	ListProviders(ctx context.Context) ([]*model.Provider, error)
	UpdateProvider(ctx context.Context, provider *model.Provider) error
	DeleteProvider(ctx context.Context, providerID string) error

	CreateColor(ctx context.Context, color *model.Color) error
	ListColors(ctx context.Context) ([]*model.Color, error)
	UpdateColor(ctx context.Context, color *model.Color) error
	DeleteColor(ctx context.Context, colorID string) error

	CreateBillboard(ctx context.Context, billboard *model.Billboard) error
	ListBillboards(ctx context.Context, activeOnly bool) ([]*model.Billboard, error)
	UpdateBillboard(ctx context.Context, billboard *model.Billboard) error
	DeleteBillboard(ctx context.Context, billboardID string) error

	CreatePost(ctx context.Context, post *model.Post) error
	ListPosts(ctx context.Context) ([]*model.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type catalogServiceImpl struct {
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
	providerRepo    repository.ProviderRepository
	colorRepo       repository.ColorRepository
	billboardRepo   repository.BillboardRepository
	postRepo        repository.PostRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
	providerRepo repository.ProviderRepository,
	colorRepo repository.ColorRepository,
	billboardRepo repository.BillboardRepository,
	postRepo repository.PostRepository,
) CatalogService {
	return &catalogServiceImpl{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		providerRepo:    providerRepo,
		colorRepo:       colorRepo,
		billboardRepo:   billboardRepo,
		postRepo:        postRepo,
	}
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error) {
	product := productFromRequest(uuid.NewString(), req)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return product, nil
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, error) {
	return s.productRepo.FindFiltered(ctx, filter)
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, productID string, req *dto.CreateProductRequest) (*model.Product, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, mapNotFound(err)
	}

	product := productFromRequest(productID, req)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return s.productRepo.FindByID(ctx, productID)
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, productID string) error {
	return mapNotFound(s.productRepo.Delete(ctx, productID))
}

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	category.ID = uuid.NewString()
	return s.categoryRepo.Create(ctx, category)
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return category, nil
}

func (s *catalogServiceImpl) UpdateCategory(ctx context.Context, category *model.Category) error {
	if _, err := s.categoryRepo.FindByID(ctx, category.ID); err != nil {
		return mapNotFound(err)
	}
	return s.categoryRepo.Update(ctx, category)
}

func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, categoryID string) error {
	return mapNotFound(s.categoryRepo.Delete(ctx, categoryID))
}

func (s *catalogServiceImpl) CreateSubcategory(ctx context.Context, subcategory *model.Subcategory) error {
	if _, err := s.categoryRepo.FindByID(ctx, subcategory.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	subcategory.ID = uuid.NewString()
	return s.subcategoryRepo.Create(ctx, subcategory)
}

func (s *catalogServiceImpl) ListSubcategories(ctx context.Context, categoryID string) ([]*model.Subcategory, error) {
	return s.subcategoryRepo.FindAll(ctx, categoryID)
}

func (s *catalogServiceImpl) UpdateSubcategory(ctx context.Context, subcategory *model.Subcategory) error {
	if _, err := s.subcategoryRepo.FindByID(ctx, subcategory.ID); err != nil {
		return mapNotFound(err)
	}
	return s.subcategoryRepo.Update(ctx, subcategory)
}

func (s *catalogServiceImpl) DeleteSubcategory(ctx context.Context, subcategoryID string) error {
	return mapNotFound(s.subcategoryRepo.Delete(ctx, subcategoryID))
}

func (s *catalogServiceImpl) CreateProvider(ctx context.Context, provider *model.Provider) error {
	provider.ID = uuid.NewString()
	return s.providerRepo.Create(ctx, provider)
}

func (s *catalogServiceImpl) ListProviders(ctx context.Context) ([]*model.Provider, error) {
	return s.providerRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) UpdateProvider(ctx context.Context, provider *model.Provider) error {
	if _, err := s.providerRepo.FindByID(ctx, provider.ID); err != nil {
		return mapNotFound(err)
	}
	return s.providerRepo.Update(ctx, provider)
}

func (s *catalogServiceImpl) DeleteProvider(ctx context.Context, providerID string) error {
	return mapNotFound(s.providerRepo.Delete(ctx, providerID))
}

func (s *catalogServiceImpl) CreateColor(ctx context.Context, color *model.Color) error {
	color.ID = uuid.NewString()
	return s.colorRepo.Create(ctx, color)
}

func (s *catalogServiceImpl) ListColors(ctx context.Context) ([]*model.Color, error) {
	return s.colorRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) UpdateColor(ctx context.Context, color *model.Color) error {
	return s.colorRepo.Update(ctx, color)
}

func (s *catalogServiceImpl) DeleteColor(ctx context.Context, colorID string) error {
	return mapNotFound(s.colorRepo.Delete(ctx, colorID))
}

func (s *catalogServiceImpl) CreateBillboard(ctx context.Context, billboard *model.Billboard) error {
	count, err := s.billboardRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count >= contentEntryLimit {
		return ErrBillboardLimit
	}

	billboard.ID = uuid.NewString()
	return s.billboardRepo.Create(ctx, billboard)
}

func (s *catalogServiceImpl) ListBillboards(ctx context.Context, activeOnly bool) ([]*model.Billboard, error) {
	return s.billboardRepo.FindAll(ctx, activeOnly)
}

func (s *catalogServiceImpl) UpdateBillboard(ctx context.Context, billboard *model.Billboard) error {
	if _, err := s.billboardRepo.FindByID(ctx, billboard.ID); err != nil {
		return mapNotFound(err)
	}
	return s.billboardRepo.Update(ctx, billboard)
}

func (s *catalogServiceImpl) DeleteBillboard(ctx context.Context, billboardID string) error {
	return mapNotFound(s.billboardRepo.Delete(ctx, billboardID))
}

func (s *catalogServiceImpl) CreatePost(ctx context.Context, post *model.Post) error {
	count, err := s.postRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count >= contentEntryLimit {
		return ErrPostLimit
	}

	post.ID = uuid.NewString()
	return s.postRepo.Create(ctx, post)
}

func (s *catalogServiceImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) DeletePost(ctx context.Context, postID string) error {
	return mapNotFound(s.postRepo.Delete(ctx, postID))
}

func productFromRequest(productID string, req *dto.CreateProductRequest) *model.Product {
	product := &model.Product{
		ID:            productID,
		Name:          req.Name,
		NameTag:       req.NameTag,
		Description:   req.Description,
		Price:         req.Price,
		CostPrice:     req.CostPrice,
		HasOffer:      req.HasOffer,
		OfferPrice:    req.OfferPrice,
		Stock:         req.Stock,
		IsFeatured:    req.IsFeatured,
		IsArchived:    req.IsArchived,
		Code:          req.Code,
		Calibration:   req.Calibration,
		Weight:        req.Weight,
		Attributes:    req.Attributes,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		ProviderID:    req.ProviderID,
		ColorID:       req.ColorID,
	}
	for _, image := range req.Images {
		product.Images = append(product.Images, model.Image{URL: image.URL})
	}

	return product
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
