package model

import "bytes"

type MercadoPagoPayment struct {
	ID     int64  `json:"id"`
	Status string `json:"status"` // pending, approved, rejected, ...
	// echoes the order id we attached at preference-creation time
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
}

type PreferenceItem struct {
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type PreferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
}

type Preference struct {
	Items             []PreferenceItem   `json:"items"`
	AutoReturn        string             `json:"auto_return"`
	BackURLs          PreferenceBackURLs `json:"back_urls"`
	NotificationURL   string             `json:"notification_url"`
	ExternalReference string             `json:"external_reference"`
}

type PreferenceResult struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// PaymentID tolerates both encodings MercadoPago uses for data.id: a bare
// number in webhook deliveries and a quoted string in test notifications.
type PaymentID string

func (p *PaymentID) UnmarshalJSON(b []byte) error {
	*p = PaymentID(bytes.Trim(b, `"`))
	return nil
}

func (p PaymentID) String() string {
	return string(p)
}

// WebhookNotification is the body MercadoPago posts to the notification URL.
type WebhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID PaymentID `json:"id"`
	} `json:"data"`
}
