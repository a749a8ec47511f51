package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snapledger/snapledger/gen/ent"
	"github.com/snapledger/snapledger/gen/ent/receipt"
	"github.com/snapledger/snapledger/internal/entity"
	"github.com/snapledger/snapledger/internal/utils"
)

// CreateReceiptRequest wraps parameters for persisting one parsed receipt.
type CreateReceiptRequest struct {
	ProfileID    uuid.UUID
	Data         *entity.ReceiptData
	CurrencyCode string
	CategoryID   *uuid.UUID
}

type ReceiptRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	ListReceipts(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error)
	SaveFromData(ctx context.Context, request *CreateReceiptRequest) (*entity.Receipt, error)
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepository{
		client: client,
		logger: logger,
	}
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) ListReceipts(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	q := r.client.Receipt.Query().Where(receipt.ProfileID(profileID))
	if fromDate != nil {
		q = q.Where(receipt.TxDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(receipt.TxDateLTE(*toDate))
	}
	recs, err := q.Order(receipt.ByTxDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.Receipt, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceipt(rec)
	}
	return result, nil
}

func (r *receiptRepository) SaveFromData(ctx context.Context, request *CreateReceiptRequest) (*entity.Receipt, error) {
	data := request.Data

	txDate, err := utils.ParseYMD(data.Date)
	if err != nil {
		return nil, err
	}

	// Total may be absent when neither a labeled line nor an item sum was
	// found. Persist zero and let the caller flag the job for review.
	var total float64
	if data.Amount != nil {
		total = *data.Amount
	}

	merchant := data.Merchant
	if merchant == "" {
		merchant = "UNKNOWN"
	}

	builder := r.client.Receipt.Create().
		SetProfileID(request.ProfileID).
		SetMerchantName(merchant).
		SetTxDate(txDate).
		SetCurrencyCode(request.CurrencyCode).
		SetTotal(total).
		SetNillableSubtotal(data.Subtotal).
		SetNillableTax(data.Tax).
		SetItems(data.Items).
		SetCategoryName(data.Category)

	if data.Address != "" {
		builder = builder.SetAddress(data.Address)
	}
	if request.CategoryID != nil {
		builder = builder.SetCategoryID(*request.CategoryID)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to save receipt", "profile_id", request.ProfileID, "merchant", merchant, "error", err)
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}
