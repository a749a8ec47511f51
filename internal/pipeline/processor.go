// Package pipeline composes the receipt extraction stages: encode the image,
// run the OCR provider chain, parse the text, classify the merchant.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/snapledger/snapledger/internal/classify"
	"github.com/snapledger/snapledger/internal/entity"
	"github.com/snapledger/snapledger/internal/ocr"
)

// Encoder is the image encoding stage.
type Encoder interface {
	Encode(ctx context.Context, ref string) (string, error)
}

// TextExtractor is the OCR stage; the provider chain implements it.
type TextExtractor interface {
	ExtractText(ctx context.Context, payload ocr.Payload) (string, error)
}

// FieldParser is the heuristic parse stage.
type FieldParser interface {
	Parse(text, currency string) (*entity.ReceiptData, error)
}

// Processor runs one receipt image through the full pipeline. It holds no
// mutable state, so concurrent invocations for different images are fully
// independent (the HTTP connection pool underneath is safe for concurrent
// use).
type Processor struct {
	Logger   *slog.Logger
	Encoder  Encoder
	Chain    TextExtractor
	Parser   FieldParser
	Language string
}

func NewProcessor(logger *slog.Logger, enc Encoder, chain TextExtractor, parser FieldParser, language string) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if language == "" {
		language = "eng"
	}
	return &Processor{Logger: logger, Encoder: enc, Chain: chain, Parser: parser, Language: language}
}

// ProcessReceipt turns one image reference into a structured record. Text
// extraction failure fails the whole operation so the caller can offer
// manual entry; a missing individual field never does.
func (p *Processor) ProcessReceipt(ctx context.Context, imageRef, currency string) (*entity.ReceiptData, error) {
	payload, err := p.encode(ctx, imageRef)
	if err != nil {
		p.Logger.Error("pipeline.encode.failed", "ref", imageRef, "error", err)
		return nil, err
	}

	text, err := p.Chain.ExtractText(ctx, payload)
	if err != nil {
		p.Logger.Error("pipeline.extract.failed", "ref", imageRef, "error", err)
		return nil, fmt.Errorf("extract text: %w", err)
	}
	p.Logger.Info("pipeline.extract.ok", "ref", imageRef, "bytes", len(text))

	data, err := p.Parser.Parse(text, currency)
	if err != nil {
		p.Logger.Error("pipeline.parse.failed", "ref", imageRef, "error", err)
		return nil, fmt.Errorf("parse receipt: %w", err)
	}

	data.Category = classify.Classify(data.Merchant)

	p.Logger.Info("pipeline.parse.ok",
		"ref", imageRef,
		"merchant", data.Merchant,
		"date", data.Date,
		"items", len(data.Items),
		"category", data.Category,
	)
	return data, nil
}

func (p *Processor) encode(ctx context.Context, imageRef string) (ocr.Payload, error) {
	dataURI, err := p.Encoder.Encode(ctx, imageRef)
	if err != nil {
		return ocr.Payload{}, fmt.Errorf("encode image: %w", err)
	}
	sourcePath := imageRef
	if strings.HasPrefix(imageRef, "http://") || strings.HasPrefix(imageRef, "https://") {
		sourcePath = ""
	}
	return ocr.Payload{
		DataURI:    dataURI,
		SourcePath: sourcePath,
		Language:   p.Language,
	}, nil
}
