package handler

import (
	"errors"
	"net/http"

	"ecommerce-admin-api/internal/model"
	"ecommerce-admin-api/internal/service"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the dashboard CRUD screens for categories,
// subcategories, providers and colors.
type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// -------- categories --------

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	var category model.Category
	if err := c.Bind(&category); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if category.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	if err := h.catalogService.CreateCategory(ctx, &category); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.catalogService.GetCategory(c.Request().Context(), c.Param("categoryId"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	var category model.Category
	if err := c.Bind(&category); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	category.ID = c.Param("categoryId")
	if category.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	if err := h.catalogService.UpdateCategory(ctx, &category); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalogService.DeleteCategory(c.Request().Context(), c.Param("categoryId")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// -------- subcategories --------

func (h *CatalogHandler) CreateSubcategory(c echo.Context) error {
	ctx := c.Request().Context()

	var subcategory model.Subcategory
	if err := c.Bind(&subcategory); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if subcategory.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}
	if subcategory.CategoryID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Category ID is required")
	}

	if err := h.catalogService.CreateSubcategory(ctx, &subcategory); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category does not exist")
		}
		return err
	}

	return c.JSON(http.StatusOK, subcategory)
}

func (h *CatalogHandler) ListSubcategories(c echo.Context) error {
	subcategories, err := h.catalogService.ListSubcategories(c.Request().Context(), c.QueryParam("categoryId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, subcategories)
}

func (h *CatalogHandler) UpdateSubcategory(c echo.Context) error {
	ctx := c.Request().Context()

	var subcategory model.Subcategory
	if err := c.Bind(&subcategory); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	subcategory.ID = c.Param("subcategoryId")
	if subcategory.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	if err := h.catalogService.UpdateSubcategory(ctx, &subcategory); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Subcategory not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, subcategory)
}

func (h *CatalogHandler) DeleteSubcategory(c echo.Context) error {
	if err := h.catalogService.DeleteSubcategory(c.Request().Context(), c.Param("subcategoryId")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Subcategory not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// -------- providers --------

func (h *CatalogHandler) CreateProvider(c echo.Context) error {
	ctx := c.Request().Context()

	var provider model.Provider
	if err := c.Bind(&provider); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if provider.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	if err := h.catalogService.CreateProvider(ctx, &provider); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, provider)
}

func (h *CatalogHandler) ListProviders(c echo.Context) error {
	providers, err := h.catalogService.ListProviders(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, providers)
}

func (h *CatalogHandler) UpdateProvider(c echo.Context) error {
	ctx := c.Request().Context()

	var provider model.Provider
	if err := c.Bind(&provider); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	provider.ID = c.Param("providerId")
	if provider.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	if err := h.catalogService.UpdateProvider(ctx, &provider); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, provider)
}

func (h *CatalogHandler) DeleteProvider(c echo.Context) error {
	if err := h.catalogService.DeleteProvider(c.Request().Context(), c.Param("providerId")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// -------- colors --------

func (h *CatalogHandler) CreateColor(c echo.Context) error {
	ctx := c.Request().Context()

	var color model.Color
	if err := c.Bind(&color); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if color.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}
	if color.Value == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Value is required")
	}

	if err := h.catalogService.CreateColor(ctx, &color); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, color)
}

func (h *CatalogHandler) ListColors(c echo.Context) error {
	colors, err := h.catalogService.ListColors(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, colors)
}

func (h *CatalogHandler) UpdateColor(c echo.Context) error {
	ctx := c.Request().Context()

	var color model.Color
	if err := c.Bind(&color); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	color.ID = c.Param("colorId")

	if err := h.catalogService.UpdateColor(ctx, &color); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, color)
}

func (h *CatalogHandler) DeleteColor(c echo.Context) error {
	if err := h.catalogService.DeleteColor(c.Request().Context(), c.Param("colorId")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Color not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}
