package handler

import (
	"errors"
	"log"
	"net/http"

	"ecommerce-admin-api/internal/client"
	"ecommerce-admin-api/internal/model"
	"ecommerce-admin-api/internal/service"

	"github.com/labstack/echo/v4"
)

type WebhookHandler struct {
	gateway      client.MercadoPagoClient
	orderService service.OrderService
}

func NewWebhookHandler(gateway client.MercadoPagoClient, orderService service.OrderService) *WebhookHandler {
	return &WebhookHandler{
		gateway:      gateway,
		orderService: orderService,
	}
}

// HandleNotification processes asynchronous payment notifications from the
// gateway. It always answers 200 so the sender does not enter a retry storm;
// repeated notifications for an already-paid order are settled idempotently.
func (h *WebhookHandler) HandleNotification(c echo.Context) error {
	ctx := c.Request().Context()

	var notification model.WebhookNotification
	if err := c.Bind(&notification); err != nil {
		return h.errorResponse(c, err)
	}

	if notification.Type != "payment" {
		return c.JSON(http.StatusOK, map[string]bool{"received": true})
	}

	payment, err := h.gateway.GetPayment(ctx, notification.Data.ID.String())
	if err != nil {
		return h.errorResponse(c, err)
	}

	if payment.Status == "approved" {
		orderID := payment.ExternalReference

		_, err := h.orderService.SettleOrder(ctx, orderID, true)
		if err != nil && !errors.Is(err, service.ErrOrderNotFound) {
			return h.errorResponse(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

func (h *WebhookHandler) errorResponse(c echo.Context, err error) error {
	log.Println("[WEBHOOK]", err)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "An error ocurred",
		"error":   err.Error(),
	})
}
