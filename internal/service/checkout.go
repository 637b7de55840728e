package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ecommerce-admin-api/internal/client"
	"ecommerce-admin-api/internal/config"
	"ecommerce-admin-api/internal/dto"
	"ecommerce-admin-api/internal/model"
	"ecommerce-admin-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart         = errors.New("cart items are required")
	ErrNotTransferMethod = errors.New("payment method is not transfer")
)

type TransferResult struct {
	OrderID     string
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	TotalAmount decimal.Decimal
}

type CheckoutService interface {
	// Checkout creates an unpaid order and a gateway preference whose
	// external_reference relinks webhook notifications to the order.
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (string, error)
	// CreateTransferOrder handles the first contact of a bank-transfer
	// purchase: an unpaid order plus the totals shown to the buyer.
	CreateTransferOrder(ctx context.Context, req *dto.TransferRequest) (*TransferResult, error)
	// ConfirmTransferOrder updates the captured buyer form data only; the
	// order stays unpaid until an administrator settles it.
	ConfirmTransferOrder(ctx context.Context, orderID string, formData json.RawMessage) error
}

type checkoutServiceImpl struct {
	db          *gorm.DB
	gateway     client.MercadoPagoClient
	storeCfg    *config.Store
	baseURL     string
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewCheckoutService(
	db *gorm.DB,
	gateway client.MercadoPagoClient,
	storeCfg *config.Store,
	baseURL string,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:          db,
		gateway:     gateway,
		storeCfg:    storeCfg,
		baseURL:     baseURL,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, req *dto.CheckoutRequest) (string, error) {
	products, err := s.loadCartProducts(ctx, req.CartItems)
	if err != nil {
		return "", err
	}

	items := make([]model.PreferenceItem, 0, len(req.CartItems))
	for _, cartItem := range req.CartItems {
		product, ok := products[cartItem.ProductID]
		if !ok {
			continue
		}
		price, _ := effectivePrice(product).Float64()
		items = append(items, model.PreferenceItem{
			Title:     product.Name,
			UnitPrice: price,
			Quantity:  cartItem.Quantity,
		})
	}

	order := s.buildOrder(req.CartItems, req.OrderFormData)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.Create(ctx, tx, order)
	})
	if err != nil {
		return "", fmt.Errorf("store order in db: %w", err)
	}

	result, err := s.gateway.CreatePreference(ctx, &model.Preference{
		Items:      items,
		AutoReturn: "approved",
		BackURLs: model.PreferenceBackURLs{
			Success: s.storeCfg.FrontendURL + "/cart?success=1",
			Failure: s.storeCfg.FrontendURL + "/cart?canceled=1",
		},
		NotificationURL:   s.baseURL + "/api/checkout/webhook",
		ExternalReference: order.ID,
	})
	if err != nil {
		return "", fmt.Errorf("mercadopago create preference: %w", err)
	}

	return result.InitPoint, nil
}

func (s *checkoutServiceImpl) CreateTransferOrder(ctx context.Context, req *dto.TransferRequest) (*TransferResult, error) {
	if len(req.CartItems) == 0 {
		return nil, ErrEmptyCart
	}

	var form struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.Unmarshal(req.OrderFormData, &form); err != nil || form.PaymentMethod != "transfer" {
		return nil, ErrNotTransferMethod
	}

	products, err := s.loadCartProducts(ctx, req.CartItems)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, cartItem := range req.CartItems {
		product, ok := products[cartItem.ProductID]
		if !ok {
			continue
		}
		subtotal = subtotal.Add(effectivePrice(product).Mul(decimal.NewFromInt(int64(cartItem.Quantity))))
	}

	shippingFee := req.ShippingFee
	if shippingFee.IsZero() {
		shippingFee = decimal.NewFromInt(s.storeCfg.ShippingFee)
	}
	totalAmount := subtotal.Add(shippingFee)

	order := s.buildOrder(req.CartItems, req.OrderFormData)
	order.ShippingFee = shippingFee
	order.TotalAmount = totalAmount

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.Create(ctx, tx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("store order in db: %w", err)
	}

	return &TransferResult{
		OrderID:     order.ID,
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		TotalAmount: totalAmount,
	}, nil
}

func (s *checkoutServiceImpl) ConfirmTransferOrder(ctx context.Context, orderID string, formData json.RawMessage) error {
	err := s.orderRepo.UpdateFormData(ctx, orderID, formData)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}

	return err
}

func (s *checkoutServiceImpl) buildOrder(cartItems []dto.CartItem, formData json.RawMessage) *model.Order {
	order := &model.Order{
		ID:       uuid.NewString(),
		IsPaid:   false,
		FormData: formData,
	}
	for _, item := range cartItems {
		order.OrderItems = append(order.OrderItems, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return order
}

func (s *checkoutServiceImpl) loadCartProducts(ctx context.Context, cartItems []dto.CartItem) (map[string]*model.Product, error) {
	productIDs := make([]string, 0, len(cartItems))
	for _, item := range cartItems {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get cart products: %w", err)
	}

	productMap := make(map[string]*model.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	return productMap, nil
}

// effectivePrice is the price the buyer pays right now: the offer price when
// one is set, the list price otherwise.
func effectivePrice(product *model.Product) decimal.Decimal {
	if product.OfferPrice != nil {
		return *product.OfferPrice
	}
	return product.Price
}
