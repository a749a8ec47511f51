package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	receiptspb "github.com/snapledger/snapledger/gen/proto/receipts/v1"
	"github.com/snapledger/snapledger/internal/entity"
	"github.com/snapledger/snapledger/internal/export"
	"github.com/snapledger/snapledger/internal/repository"
	"github.com/snapledger/snapledger/internal/utils"
)

// ReceiptPipeline is what serving ProcessReceipt needs from the extraction
// stack: parse one image reference into a structured record.
type ReceiptPipeline interface {
	ProcessReceipt(ctx context.Context, imageRef, currency string) (*entity.ReceiptData, error)
}

type ReceiptService struct {
	receiptspb.UnimplementedReceiptsServiceServer
	pipeline     ReceiptPipeline
	receiptRepo  repository.ReceiptRepository
	profileRepo  repository.ProfileRepository
	categoryRepo repository.CategoryRepository
	exporter     *export.Service
	logger       *slog.Logger
}

func NewReceiptService(
	pipeline ReceiptPipeline,
	receiptRepo repository.ReceiptRepository,
	profileRepo repository.ProfileRepository,
	categoryRepo repository.CategoryRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *ReceiptService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptService{
		pipeline:     pipeline,
		receiptRepo:  receiptRepo,
		profileRepo:  profileRepo,
		categoryRepo: categoryRepo,
		exporter:     exporter,
		logger:       logger,
	}
}

func (s *ReceiptService) ProcessReceipt(ctx context.Context, req *receiptspb.ProcessReceiptRequest) (*receiptspb.ProcessReceiptResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	if pid == "" {
		return nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	ref := strings.TrimSpace(req.GetImageRef())
	if ref == "" {
		return nil, status.Error(codes.InvalidArgument, "image_ref is required")
	}

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		s.logger.Error("profile lookup failed", "profile_id", profileID, "error", err)
		return nil, status.Error(codes.NotFound, "profile not found")
	}

	currency := strings.TrimSpace(req.GetCurrencyCode())
	if currency == "" {
		currency = profile.DefaultCurrency
	}

	s.logger.Info("processing receipt", "profile_id", profileID, "ref", ref, "currency", currency)
	data, err := s.pipeline.ProcessReceipt(ctx, ref, currency)
	if err != nil {
		s.logger.Error("receipt processing failed", "ref", ref, "error", err)
		return nil, status.Errorf(codes.Internal, "process receipt: %v", err)
	}

	resp := &receiptspb.ProcessReceiptResponse{
		Data:        utils.ToPBReceiptData(data),
		NeedsReview: data.Amount == nil || data.Merchant == "",
	}
	if req.GetDryRun() {
		return resp, nil
	}

	rec, err := s.receiptRepo.SaveFromData(ctx, &repository.CreateReceiptRequest{
		ProfileID:    profileID,
		Data:         data,
		CurrencyCode: currency,
		CategoryID:   repository.ResolveCategoryID(ctx, s.categoryRepo, data.Category),
	})
	if err != nil {
		s.logger.Error("receipt save failed", "profile_id", profileID, "error", err)
		return nil, status.Errorf(codes.Internal, "save receipt: %v", err)
	}
	resp.Receipt = utils.ToPBReceipt(rec)
	return resp, nil
}

func (s *ReceiptService) ListReceipts(ctx context.Context, req *receiptspb.ListReceiptsRequest) (*receiptspb.ListReceiptsResponse, error) {
	if strings.TrimSpace(req.GetProfileId()) == "" {
		s.logger.Error("list receipts request missing profile_id")
		return nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		s.logger.Error("invalid profile_id format for list receipts", "profile_id", req.GetProfileId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	recs, err := s.receiptRepo.ListReceipts(ctx, profileID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list receipts", "profile_id", profileID, "error", err)
		return nil, status.Errorf(codes.Internal, "list receipts: %v", err)
	}
	s.logger.Info("receipts listed successfully", "profile_id", profileID, "count", len(recs))

	out := make([]*receiptspb.Receipt, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReceipt(r))
	}
	return &receiptspb.ListReceiptsResponse{Receipts: out}, nil
}

func (s *ReceiptService) ExportReceipts(ctx context.Context, req *receiptspb.ExportReceiptsRequest) (*receiptspb.ExportReceiptsResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	profileID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	xlsx, err := s.exporter.ExportReceiptsXLSX(ctx, profileID, fromDate, toDate)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "profile_id", pid, "err", err)
		return nil, status.Errorf(codes.Internal, "export receipts: %v", err)
	}
	return &receiptspb.ExportReceiptsResponse{Xlsx: xlsx}, nil
}

func parseDateWindow(from, to string) (*time.Time, *time.Time, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, err
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, err
		}
		toPtr = &t
	}
	return fromPtr, toPtr, nil
}
