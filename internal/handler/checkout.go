package handler

import (
	"errors"
	"net/http"

	"ecommerce-admin-api/internal/dto"
	"ecommerce-admin-api/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.CartItems) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Cart items are required")
	}

	initPoint, err := h.checkoutService.Checkout(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CheckoutResponse{URL: initPoint})
}

// Transfer serves the bank-transfer flow: first contact creates an unpaid
// order and returns totals, a follow-up with orderId only refreshes the
// captured buyer form data. Neither call touches isPaid or stock.
func (h *CheckoutHandler) Transfer(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.OrderID != "" {
		err := h.checkoutService.ConfirmTransferOrder(ctx, req.OrderID, req.OrderFormData)
		if err != nil {
			if errors.Is(err, service.ErrOrderNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "Order not found")
			}
			return err
		}

		return c.JSON(http.StatusOK, dto.TransferResponse{
			Success: true,
			Message: "Order confirmed",
			OrderID: req.OrderID,
		})
	}

	result, err := h.checkoutService.CreateTransferOrder(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return echo.NewHTTPError(http.StatusBadRequest, "Cart items are required")
		case errors.Is(err, service.ErrNotTransferMethod):
			return echo.NewHTTPError(http.StatusBadRequest, "This endpoint only processes transfer payments")
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.TransferResponse{
		Success:     true,
		Message:     "Order created",
		OrderID:     result.OrderID,
		Subtotal:    &result.Subtotal,
		ShippingFee: &result.ShippingFee,
		TotalAmount: &result.TotalAmount,
	})
}
