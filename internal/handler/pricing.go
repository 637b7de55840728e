package handler

import (
	"errors"
	"fmt"
	"net/http"

	"ecommerce-admin-api/internal/dto"
	"ecommerce-admin-api/internal/service"

	"github.com/labstack/echo/v4"
)

type PricingHandler struct {
	pricingService service.PricingService
}

func NewPricingHandler(pricingService service.PricingService) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// ApplyPriceUpdate bulk-adjusts prices for every product matched by the
// requested filter.
func (h *PricingHandler) ApplyPriceUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PriceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UpdateType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Update type is required")
	}
	if req.Percentage <= 0 || req.Percentage > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "Valid percentage is required (0.01-100)")
	}

	updated, err := h.pricingService.ApplyIncrease(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPriceFilter):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid filter criteria")
		case errors.Is(err, service.ErrNoProductsMatched):
			return echo.NewHTTPError(http.StatusNotFound, "No products found matching the criteria")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Updated prices for %d products with a %g%% increase.", updated, req.Percentage),
	})
}

// PreviewPriceUpdate reports what a bulk update would touch, either as a bare
// count or as the first hundred matching products.
func (h *PricingHandler) PreviewPriceUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	filters := dto.PriceUpdateFilters{
		CategoryID:    c.QueryParam("categoryId"),
		SubcategoryID: c.QueryParam("subcategoryId"),
		ProviderID:    c.QueryParam("providerId"),
		ProductID:     c.QueryParam("productId"),
	}

	if filters.CategoryID == "" && filters.SubcategoryID == "" &&
		filters.ProviderID == "" && filters.ProductID == "" {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"count":   0,
			"message": "No filter criteria provided",
		})
	}

	if c.QueryParam("countOnly") == "true" {
		count, err := h.pricingService.PreviewCount(ctx, filters)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]int64{"count": count})
	}

	products, err := h.pricingService.PreviewProducts(ctx, filters)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}
