package handler

import (
	"fmt"
	"testing"

	"ecommerce-admin-api/internal/client"
	"ecommerce-admin-api/internal/model"
	"ecommerce-admin-api/internal/repository"
	"ecommerce-admin-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := client.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func newOrderService(db *gorm.DB) service.OrderService {
	return service.NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
	)
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) *model.Product {
	t.Helper()

	product := &model.Product{
		ID:            uuid.NewString(),
		Name:          "Test Product",
		NameTag:       "test-product",
		Description:   "test",
		Price:         decimal.NewFromInt(100),
		Stock:         stock,
		CategoryID:    "cat-1",
		SubcategoryID: "sub-1",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	return product
}

func seedOrder(t *testing.T, db *gorm.DB, items ...model.OrderItem) *model.Order {
	t.Helper()

	order := &model.Order{
		ID:         uuid.NewString(),
		FormData:   []byte(`{"paymentMethod":"mercadopago"}`),
		OrderItems: items,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	return order
}

func productStock(t *testing.T, db *gorm.DB, productID string) int {
	t.Helper()

	var product model.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}

	return product.Stock
}

func orderIsPaid(t *testing.T, db *gorm.DB, orderID string) bool {
	t.Helper()

	var order model.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}

	return order.IsPaid
}
