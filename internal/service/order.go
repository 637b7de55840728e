package service

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-admin-api/internal/model"
	"ecommerce-admin-api/internal/repository"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService interface {
	// SettleOrder applies the requested isPaid value to an order. The
	// false→true transition decrements stock for every line item exactly
	// once; any other combination leaves stock untouched.
	SettleOrder(ctx context.Context, orderID string, paid bool) (*model.Order, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID string) (*model.Order, error)
}

type orderServiceImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) OrderService {
	return &orderServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *orderServiceImpl) SettleOrder(ctx context.Context, orderID string, paid bool) (*model.Order, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindWithItems(ctx, tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("load order: %w", err)
		}

		if !paid {
			return s.orderRepo.SetUnpaid(ctx, tx, orderID)
		}

		// Conditional write doubles as the idempotence guard: a second
		// "mark paid" call affects zero rows and skips the stock loop,
		// even when two callers race on the same order.
		settled, err := s.orderRepo.MarkPaid(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}
		if !settled {
			return nil
		}

		for _, item := range order.OrderItems {
			if err := s.productRepo.DecrementStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("decrement stock for product %s: %w", item.ProductID, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.FindWithItems(ctx, s.db, orderID)
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindWithItems(ctx, s.db, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}

func (s *orderServiceImpl) DeleteOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.Delete(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}
