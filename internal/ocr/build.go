package ocr

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/snapledger/snapledger/internal/common"
)

// BuildChain assembles the production provider chain from config, in priority
// order: hosted OCR.space, Gemini vision, local tesseract. The mock provider
// is never part of this chain.
func BuildChain(cfg common.OCRConfig, logger *slog.Logger) *Chain {
	client := &http.Client{Timeout: cfg.RequestTimeout}
	if client.Timeout <= 0 {
		client.Timeout = 30 * time.Second
	}

	providers := []Provider{
		NewOCRSpace(OCRSpaceConfig{
			APIKey: cfg.OCRSpaceAPIKey,
			URL:    cfg.OCRSpaceURL,
			Engine: cfg.OCRSpaceEngine,
		}, client, logger),
		NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, logger),
		NewTesseract(cfg.Tesseract, cfg.TesseractLang, logger),
	}
	return NewChain(logger, providers...)
}

// BuildDevChain is BuildChain plus the fabricating mock at the end. Only for
// local development; refuses to add the mock unless the gate is set.
func BuildDevChain(cfg common.OCRConfig, logger *slog.Logger) *Chain {
	chain := BuildChain(cfg, logger)
	if !cfg.AllowMock {
		return chain
	}
	logger.Warn("ocr.chain.mock_enabled", "hint", "fabricated receipt text may be served")
	chain.providers = append(chain.providers, NewMock(logger))
	return chain
}
