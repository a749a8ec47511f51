package ocr

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Chain tries providers strictly in configured order until one returns usable
// text. Providers are never retried and never called in parallel: fan-out
// would double quota consumption and break the priority ordering.
type Chain struct {
	providers []Provider
	logger    *slog.Logger
}

func NewChain(logger *slog.Logger, providers ...Provider) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{providers: providers, logger: logger}
}

// Result carries the extracted text and which provider produced it.
type Result struct {
	Text     string
	Provider string
}

// ExtractText walks the chain. On success it returns the first provider's
// normalized text. When every provider fails it returns a *ChainError
// enumerating each failure; unavailable providers are logged but excluded
// from the aggregate.
func (c *Chain) ExtractText(ctx context.Context, payload Payload) (string, error) {
	res, err := c.Extract(ctx, payload)
	return res.Text, err
}

// Extract is ExtractText with provider attribution for callers that record
// which provider won.
func (c *Chain) Extract(ctx context.Context, payload Payload) (Result, error) {
	var failures []*ProviderError

	for _, p := range c.providers {
		if !p.Available() {
			c.logger.Info("ocr.chain.provider_skipped", "provider", p.Name(), "reason", "unavailable in this environment")
			continue
		}
		if err := ctx.Err(); err != nil {
			failures = append(failures, &ProviderError{
				Provider: p.Name(), Kind: KindNetworkFailure,
				Message: "context cancelled before attempt", Err: err,
			})
			break
		}

		start := time.Now()
		text, err := p.ExtractText(ctx, payload)
		if err != nil {
			pe, ok := err.(*ProviderError)
			if !ok {
				pe = &ProviderError{Provider: p.Name(), Kind: KindNetworkFailure, Message: "unclassified failure", Err: err}
			}
			c.logger.Warn("ocr.chain.provider_failed",
				"provider", p.Name(), "kind", string(pe.Kind),
				"elapsed_ms", time.Since(start).Milliseconds(), "error", pe.Message,
			)
			failures = append(failures, pe)
			continue
		}

		text = Normalize(text)
		if len(strings.TrimSpace(text)) < MinUsableTextLen {
			c.logger.Warn("ocr.chain.text_too_short", "provider", p.Name(), "bytes", len(text))
			failures = append(failures, &ProviderError{
				Provider: p.Name(), Kind: KindNoTextDetected,
				Message: "extracted text below usable threshold",
			})
			continue
		}

		c.logger.Info("ocr.chain.ok",
			"provider", p.Name(), "bytes", len(text),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{Text: text, Provider: p.Name()}, nil
	}

	return Result{}, &ChainError{Failures: failures}
}
