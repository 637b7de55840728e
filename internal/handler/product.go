package handler

import (
	"errors"
	"net/http"

	"ecommerce-admin-api/internal/dto"
	"ecommerce-admin-api/internal/repository"
	"ecommerce-admin-api/internal/service"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindProductRequest(c)
	if err != nil {
		return err
	}

	product, err := h.catalogService.CreateProduct(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := repository.ProductFilter{
		CategoryID:    c.QueryParam("categoryId"),
		SubcategoryID: c.QueryParam("subcategoryId"),
		ProviderID:    c.QueryParam("providerId"),
		FeaturedOnly:  c.QueryParam("isFeatured") != "",
	}

	products, err := h.catalogService.ListProducts(ctx, filter)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.GetProduct(ctx, c.Param("productId"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindProductRequest(c)
	if err != nil {
		return err
	}

	product, err := h.catalogService.UpdateProduct(ctx, c.Param("productId"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogService.DeleteProduct(ctx, c.Param("productId")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func bindProductRequest(c echo.Context) (*dto.CreateProductRequest, error) {
	var req dto.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	switch {
	case req.Name == "":
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	case req.NameTag == "":
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Name tag is required")
	case req.Description == "":
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Description is required")
	case len(req.Images) == 0:
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Images are required")
	case req.Price.IsZero():
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Price is required")
	case req.CategoryID == "":
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Category ID is required")
	case req.SubcategoryID == "":
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Subcategory ID is required")
	}

	return &req, nil
}
