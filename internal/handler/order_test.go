package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authmw "ecommerce-admin-api/internal/middleware"
	"ecommerce-admin-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

func adminToken(t *testing.T, role string) string {
	t.Helper()

	claims := jwt.MapClaims{"sub": "user-1"}
	if role != "" {
		claims["role"] = role
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	return signed
}

func newOrderRouter(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	h := NewOrderHandler(newOrderService(db))

	e := echo.New()
	e.PATCH("/api/orders/:orderId", h.UpdateOrder,
		authmw.AuthRequired(testJWTSecret), authmw.RequireAdmin())
	e.GET("/api/orders/:orderId", h.GetOrder)

	return e, db
}

func patchOrder(e *echo.Echo, orderID, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+orderID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUpdateOrderAdminSettles(t *testing.T) {
	e, db := newOrderRouter(t)

	product := seedProduct(t, db, 10)
	order := seedOrder(t, db, model.OrderItem{ProductID: product.ID, Quantity: 3})

	rec := patchOrder(e, order.ID, adminToken(t, "admin"), `{"isPaid":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if !orderIsPaid(t, db, order.ID) {
		t.Error("order should be paid")
	}
	if got := productStock(t, db, product.ID); got != 7 {
		t.Errorf("stock = %d, want 7", got)
	}
}

func TestUpdateOrderRejectsNonAdmin(t *testing.T) {
	e, db := newOrderRouter(t)

	product := seedProduct(t, db, 10)
	order := seedOrder(t, db, model.OrderItem{ProductID: product.ID, Quantity: 3})

	rec := patchOrder(e, order.ID, adminToken(t, "editor"), `{"isPaid":true}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}

	// the rejected request must not mutate anything
	if orderIsPaid(t, db, order.ID) {
		t.Error("order must stay unpaid")
	}
	if got := productStock(t, db, product.ID); got != 10 {
		t.Errorf("stock = %d, want 10", got)
	}
}

func TestUpdateOrderRejectsMissingToken(t *testing.T) {
	e, db := newOrderRouter(t)

	product := seedProduct(t, db, 10)
	order := seedOrder(t, db, model.OrderItem{ProductID: product.ID, Quantity: 3})

	rec := patchOrder(e, order.ID, "", `{"isPaid":true}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if orderIsPaid(t, db, order.ID) {
		t.Error("order must stay unpaid")
	}
}

func TestUpdateOrderRequiresIsPaid(t *testing.T) {
	e, db := newOrderRouter(t)

	product := seedProduct(t, db, 10)
	order := seedOrder(t, db, model.OrderItem{ProductID: product.ID, Quantity: 1})

	rec := patchOrder(e, order.ID, adminToken(t, "admin"), `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateOrderUnknownOrder(t *testing.T) {
	e, _ := newOrderRouter(t)

	rec := patchOrder(e, "missing", adminToken(t, "admin"), `{"isPaid":true}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
