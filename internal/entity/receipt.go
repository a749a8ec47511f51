package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptData is the structured record produced from one OCR pass over a
// receipt image. It is built once per invocation and never mutated after the
// parser returns it. Optional fields are nil when the corresponding heuristic
// found nothing; Date is always a valid YYYY-MM-DD string.
type ReceiptData struct {
	Merchant string   `json:"merchant,omitempty"`
	Address  string   `json:"address,omitempty"`
	Date     string   `json:"date"`
	Amount   *float64 `json:"amount,omitempty"`
	Subtotal *float64 `json:"subtotal,omitempty"`
	Tax      *float64 `json:"tax,omitempty"`
	Items    []string `json:"items"`
	Category string   `json:"category,omitempty"`
}

// Receipt represents a persisted receipt for data transfer between layers.
type Receipt struct {
	ID           uuid.UUID `json:"id"`
	ProfileID    uuid.UUID `json:"profile_id"`
	MerchantName string    `json:"merchant_name"`
	Address      *string   `json:"address,omitempty"`
	TxDate       time.Time `json:"tx_date"`
	Subtotal     *float64  `json:"subtotal,omitempty"`
	Tax          *float64  `json:"tax,omitempty"`
	Total        float64   `json:"total"`
	CurrencyCode string    `json:"currency_code"`
	CategoryName string    `json:"category_name"`
	Items        []string  `json:"items"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile represents a bookkeeping profile for data transfer between layers.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
