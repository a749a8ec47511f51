package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/snapledger/snapledger/internal/entity"
	"github.com/snapledger/snapledger/internal/repository"
)

func TestExport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Export Suite")
}

type fakeReceiptRepo struct {
	receipts []*entity.Receipt
	gotFrom  *time.Time
	gotTo    *time.Time
}

func (f *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return nil, nil
}

func (f *fakeReceiptRepo) ListReceipts(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	f.gotFrom, f.gotTo = fromDate, toDate
	return f.receipts, nil
}

func (f *fakeReceiptRepo) SaveFromData(ctx context.Context, request *repository.CreateReceiptRequest) (*entity.Receipt, error) {
	return nil, nil
}

var _ = Describe("ExportReceiptsXLSX", func() {
	var (
		repo      *fakeReceiptRepo
		svc       *Service
		profileID uuid.UUID
	)

	BeforeEach(func() {
		profileID = uuid.New()
		subtotal := 18.05
		tax := 2.71
		address := "123 Main Street"
		repo = &fakeReceiptRepo{receipts: []*entity.Receipt{
			{
				ID:           uuid.New(),
				ProfileID:    profileID,
				MerchantName: "SHOPRITE SUPERMARKET",
				Address:      &address,
				TxDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Subtotal:     &subtotal,
				Tax:          &tax,
				Total:        20.76,
				CurrencyCode: "USD",
				CategoryName: "Groceries",
				Items:        []string{"BREAD - USD 2.50", "MILK - USD 3.75"},
			},
			{
				ID:           uuid.New(),
				ProfileID:    profileID,
				MerchantName: "UNKNOWN",
				TxDate:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				Total:        0,
				CurrencyCode: "USD",
			},
		}}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc = NewService(repo, logger)
	})

	It("writes a header row plus one row per receipt", func() {
		out, err := svc.ExportReceiptsXLSX(context.Background(), profileID, nil, nil)
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(out))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Receipts")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3))

		Expect(rows[0]).To(Equal([]string{
			"Transaction Date", "Merchant", "Address", "Category",
			"Subtotal", "Tax", "Total", "Currency", "Items",
		}))
		Expect(rows[1][0]).To(Equal("2024-01-15"))
		Expect(rows[1][1]).To(Equal("SHOPRITE SUPERMARKET"))
		Expect(rows[1][3]).To(Equal("Groceries"))
		Expect(rows[1][6]).To(Equal("20.76"))
		Expect(rows[1][8]).To(Equal("BREAD - USD 2.50; MILK - USD 3.75"))
		Expect(rows[2][1]).To(Equal("UNKNOWN"))
	})

	It("defaults the window end to today when only a start is given", func() {
		from := time.Date(2024, 1, 1, 15, 30, 0, 0, time.Local)
		_, err := svc.ExportReceiptsXLSX(context.Background(), profileID, &from, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(repo.gotFrom).NotTo(BeNil())
		Expect(repo.gotFrom.Hour()).To(BeZero())
		Expect(repo.gotFrom.Location()).To(Equal(time.UTC))
		Expect(repo.gotTo).NotTo(BeNil())
	})

	It("passes a nil window through when no dates are given", func() {
		_, err := svc.ExportReceiptsXLSX(context.Background(), profileID, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.gotFrom).To(BeNil())
		Expect(repo.gotTo).To(BeNil())
	})
})
