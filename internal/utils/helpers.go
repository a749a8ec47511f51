package utils

import (
	"fmt"
	"time"

	"github.com/snapledger/snapledger/gen/ent"
	receiptspb "github.com/snapledger/snapledger/gen/proto/receipts/v1"
	"github.com/snapledger/snapledger/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func decOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func ToPBProfile(p *ent.Profile) *receiptspb.Profile {
	return &receiptspb.Profile{
		Id:              p.ID.String(),
		Name:            p.Name,
		DefaultCurrency: p.DefaultCurrency,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBReceipt(r *entity.Receipt) *receiptspb.Receipt {
	return &receiptspb.Receipt{
		Id:           r.ID.String(),
		ProfileId:    r.ProfileID.String(),
		MerchantName: r.MerchantName,
		Address:      strOrEmpty(r.Address),
		TxDate:       r.TxDate.Format("2006-01-02"),
		Subtotal:     decOrEmpty(r.Subtotal),
		Tax:          decOrEmpty(r.Tax),
		Total:        fmt.Sprintf("%.2f", r.Total),
		CurrencyCode: r.CurrencyCode,
		Category:     r.CategoryName,
		Items:        r.Items,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPBReceiptData maps the parser output without touching persistence fields.
func ToPBReceiptData(d *entity.ReceiptData) *receiptspb.ReceiptData {
	return &receiptspb.ReceiptData{
		Merchant: d.Merchant,
		Address:  d.Address,
		Date:     d.Date,
		Amount:   decOrEmpty(d.Amount),
		Subtotal: decOrEmpty(d.Subtotal),
		Tax:      decOrEmpty(d.Tax),
		Items:    d.Items,
		Category: d.Category,
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToProfile(e *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:              e.ID,
		Name:            e.Name,
		DefaultCurrency: e.DefaultCurrency,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToReceipt(e *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:           e.ID,
		ProfileID:    e.ProfileID,
		MerchantName: e.MerchantName,
		Address:      e.Address,
		TxDate:       e.TxDate,
		Subtotal:     e.Subtotal,
		Tax:          e.Tax,
		Total:        e.Total,
		CurrencyCode: e.CurrencyCode,
		CategoryName: e.CategoryName,
		Items:        e.Items,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
