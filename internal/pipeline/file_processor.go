package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/snapledger/snapledger/constants"
	"github.com/snapledger/snapledger/internal/classify"
	"github.com/snapledger/snapledger/internal/entity"
	"github.com/snapledger/snapledger/internal/ocr"
	"github.com/snapledger/snapledger/internal/repository"
	"github.com/snapledger/snapledger/internal/schema"
)

// ChainExtractor is the OCR stage with provider attribution.
type ChainExtractor interface {
	Extract(ctx context.Context, payload ocr.Payload) (ocr.Result, error)
}

// FileProcessor drives one ingested file through extraction and persists the
// outcome: an extract_job row tracking progress and, on success, a receipt.
type FileProcessor struct {
	logger       *slog.Logger
	encoder      Encoder
	chain        ChainExtractor
	parser       FieldParser
	filesRepo    repository.ReceiptFileRepository
	profileRepo  repository.ProfileRepository
	jobsRepo     repository.ExtractJobRepository
	receiptsRepo repository.ReceiptRepository
	categoryRepo repository.CategoryRepository
	language     string
}

func NewFileProcessor(
	logger *slog.Logger,
	encoder Encoder,
	chain ChainExtractor,
	parser FieldParser,
	filesRepo repository.ReceiptFileRepository,
	profileRepo repository.ProfileRepository,
	jobsRepo repository.ExtractJobRepository,
	receiptsRepo repository.ReceiptRepository,
	categoryRepo repository.CategoryRepository,
	language string,
) *FileProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	if language == "" {
		language = "eng"
	}
	return &FileProcessor{
		logger:       logger,
		encoder:      encoder,
		chain:        chain,
		parser:       parser,
		filesRepo:    filesRepo,
		profileRepo:  profileRepo,
		jobsRepo:     jobsRepo,
		receiptsRepo: receiptsRepo,
		categoryRepo: categoryRepo,
		language:     language,
	}
}

// ProcessFile runs the stored file through encode, OCR, parse and persist.
// OCR exhaustion fails the job; a receipt with weak fields is still saved but
// flagged for review.
func (p *FileProcessor) ProcessFile(ctx context.Context, fileID uuid.UUID) (*entity.Receipt, error) {
	file, err := p.filesRepo.GetByID(ctx, fileID)
	if err != nil {
		p.logger.Error("pipeline.file.load_failed", "file_id", fileID, "error", err)
		return nil, fmt.Errorf("load file: %w", err)
	}

	format := constants.MapExtToFormat(file.FileExt)
	if format == "" {
		return nil, fmt.Errorf("unsupported file extension %q", file.FileExt)
	}

	profile, err := p.profileRepo.GetByID(ctx, file.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	job, err := p.jobsRepo.Start(ctx, file.ID, file.ProfileID, format)
	if err != nil {
		return nil, fmt.Errorf("start job: %w", err)
	}

	dataURI, err := p.encoder.Encode(ctx, file.SourcePath)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, fmt.Errorf("encode image: %w", err)
	}

	res, err := p.chain.Extract(ctx, ocr.Payload{
		DataURI:    dataURI,
		SourcePath: file.SourcePath,
		Language:   p.language,
	})
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if err := p.jobsRepo.FinishOCRSuccess(ctx, job.ID, res.Text, res.Provider); err != nil {
		return nil, err
	}

	data, err := p.parser.Parse(res.Text, profile.DefaultCurrency)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, fmt.Errorf("parse receipt: %w", err)
	}
	data.Category = classify.Classify(data.Merchant)

	needsReview := data.Amount == nil || data.Merchant == ""
	if err := p.validate(data); err != nil {
		p.logger.Warn("pipeline.validate.failed", "job_id", job.ID, "error", err)
		needsReview = true
	}

	rec, err := p.receiptsRepo.SaveFromData(ctx, &repository.CreateReceiptRequest{
		ProfileID:    file.ProfileID,
		Data:         data,
		CurrencyCode: profile.DefaultCurrency,
		CategoryID:   repository.ResolveCategoryID(ctx, p.categoryRepo, data.Category),
	})
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, fmt.Errorf("save receipt: %w", err)
	}

	if err := p.jobsRepo.FinishParsed(ctx, job.ID, rec.ID, data, needsReview); err != nil {
		return nil, err
	}

	p.logger.Info("pipeline.file.ok",
		"file_id", fileID,
		"receipt_id", rec.ID,
		"provider", res.Provider,
		"merchant", data.Merchant,
		"needs_review", needsReview,
	)
	return rec, nil
}

func (p *FileProcessor) validate(data *entity.ReceiptData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s := schema.BuildReceiptJSONSchema(constants.AsStringSlice())
	if err := schema.ValidateJSONAgainstSchema(s, raw); err != nil {
		return fmt.Errorf("receipt payload: %s", strings.TrimSpace(err.Error()))
	}
	return nil
}
