package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CheckoutRequest struct {
	CartItems     []CartItem      `json:"cartItems"`
	OrderFormData json.RawMessage `json:"orderFormData"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type TransferRequest struct {
	CartItems     []CartItem      `json:"cartItems"`
	OrderFormData json.RawMessage `json:"orderFormData"`
	ShippingFee   decimal.Decimal `json:"shippingFee"`
	// present when confirming an existing order
	OrderID string `json:"orderId"`
}

type TransferResponse struct {
	Success     bool             `json:"success"`
	Message     string           `json:"message"`
	OrderID     string           `json:"orderId"`
	Subtotal    *decimal.Decimal `json:"subtotal,omitempty"`
	ShippingFee *decimal.Decimal `json:"shippingFee,omitempty"`
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
}

type UpdateOrderRequest struct {
	IsPaid *bool `json:"isPaid"`
}

type PriceUpdateFilters struct {
	CategoryID    string `json:"categoryId"`
	SubcategoryID string `json:"subcategoryId"`
	ProviderID    string `json:"providerId"`
	ProductID     string `json:"productId"`
}

type PriceUpdateRequest struct {
	UpdateType string             `json:"updateType"` // category | subcategory | provider | product
	Percentage float64            `json:"percentage"`
	Filters    PriceUpdateFilters `json:"filters"`
}

type CreateProductRequest struct {
	Name          string           `json:"name"`
	NameTag       string           `json:"nameTag"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	CostPrice     decimal.Decimal  `json:"costPrice"`
	HasOffer      bool             `json:"hasOffer"`
	OfferPrice    *decimal.Decimal `json:"offerPrice"`
	Stock         int              `json:"stock"`
	IsFeatured    bool             `json:"isFeatured"`
	IsArchived    bool             `json:"isArchived"`
	Code          string           `json:"code"`
	Calibration   string           `json:"calibration"`
	Weight        string           `json:"weight"`
	Attributes    json.RawMessage  `json:"attributes"`
	CategoryID    string           `json:"categoryId"`
	SubcategoryID string           `json:"subcategoryId"`
	ProviderID    *string          `json:"providerId"`
	ColorID       *string          `json:"colorId"`
	Images        []ImagePayload   `json:"images"`
}

type ImagePayload struct {
	URL string `json:"url"`
}
