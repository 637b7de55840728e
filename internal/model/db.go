package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `gorm:"primaryKey;size:36;not null" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	NameTag     string          `gorm:"size:255;not null" json:"nameTag"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(12,2)" json:"costPrice"`
	HasOffer    bool            `gorm:"not null;default:false" json:"hasOffer"`
	// nil when the product has no active offer
	OfferPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"offerPrice"`
	// stock is never negative; settlement clamps decrements at zero
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	IsFeatured  bool            `gorm:"index;not null;default:false" json:"isFeatured"`
	IsArchived  bool            `gorm:"index;not null;default:false" json:"isArchived"`
	Code        string          `gorm:"size:64" json:"code"`
	Calibration string          `gorm:"size:64" json:"calibration"`
	Weight      string          `gorm:"size:64" json:"weight"`
	Attributes  json.RawMessage `gorm:"type:text" json:"attributes"`

	CategoryID    string  `gorm:"size:36;index;not null" json:"categoryId"`
	SubcategoryID string  `gorm:"size:36;index;not null" json:"subcategoryId"`
	ProviderID    *string `gorm:"size:36;index" json:"providerId"`
	ColorID       *string `gorm:"size:36;index" json:"colorId"`

	Images      []Image      `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Category    *Category    `json:"category,omitempty"`
	Subcategory *Subcategory `json:"subcategory,omitempty"`
	Provider    *Provider    `json:"provider,omitempty"`
	Color       *Color       `json:"color,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID string    `gorm:"size:36;index;not null" json:"productId"`
	URL       string    `gorm:"size:512;not null" json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type Order struct {
	ID     string `gorm:"primaryKey;size:36;not null" json:"id"`
	IsPaid bool   `gorm:"index;not null;default:false" json:"isPaid"`
	// buyer-supplied checkout form, stored as-is
	FormData    json.RawMessage `gorm:"type:text" json:"formData"`
	ShippingFee decimal.Decimal `gorm:"type:decimal(12,2)" json:"shippingFee"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"totalAmount"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"orderItems"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// FK → orders.id
	OrderID string `gorm:"size:36;index;not null" json:"orderId"`
	// FK → products.id
	ProductID string   `gorm:"size:36;index;not null" json:"productId"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`
}

type Category struct {
	ID        string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Title     string    `gorm:"size:255" json:"title"`
	ImageURL  string    `gorm:"size:512" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Subcategory struct {
	ID         string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	CategoryID string    `gorm:"size:36;index;not null" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Provider struct {
	ID        string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Color struct {
	ID        string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Value     string    `gorm:"size:32;not null" json:"value"` // hex code shown in the dashboard
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Billboard struct {
	ID        string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	ImageURL  string    `gorm:"size:512;not null" json:"imageUrl"`
	IsActive  bool      `gorm:"not null;default:false" json:"isActive"`
	Order     int       `gorm:"not null;default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Post struct {
	ID          string    `gorm:"primaryKey;size:36;not null" json:"id"`
	ImageURL    string    `gorm:"size:512;not null" json:"imageUrl"`
	Link        string    `gorm:"size:512;not null" json:"link"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
