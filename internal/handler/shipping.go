package handler

import (
	"net/http"

	"ecommerce-admin-api/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ShippingHandler struct {
	storeCfg *config.Store
}

func NewShippingHandler(storeCfg *config.Store) *ShippingHandler {
	return &ShippingHandler{
		storeCfg: storeCfg,
	}
}

func (h *ShippingHandler) GetShipping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"shippingFee": h.storeCfg.ShippingFee,
		"currency":    h.storeCfg.ShippingCurrency,
		"description": "Standard shipping, countrywide",
	})
}

// UpdateShipping validates and echoes the new fee. The fee itself still lives
// in configuration; there is no settings table behind it yet.
func (h *ShippingHandler) UpdateShipping(c echo.Context) error {
	var req struct {
		ShippingFee decimal.Decimal `json:"shippingFee"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Shipping fee is required and must be a number")
	}
	if req.ShippingFee.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "Shipping fee is required and must be a number")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"shippingFee": req.ShippingFee,
		"updated":     true,
	})
}
