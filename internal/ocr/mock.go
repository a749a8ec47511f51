package ocr

import (
	"context"
	"log/slog"
)

// mockText is a fabricated sample receipt for offline development.
const mockText = `SHOPRITE SUPERMARKET
123 Main Street Tel: 555-0142
Date: 2024-01-15
ITEM
BREAD 2.50
MILK 3.75
EGGS 4.20
SUGAR 3.10
RICE 4.50
SUBTOTAL 18.05
TAX 2.71
TOTAL 20.76
CASH 25.00
CHANGE 4.24
THANK YOU`

// Mock fabricates receipt text without touching the network. It exists only
// for local development against an empty config and must never be registered
// on a production chain: NewChain callers add it explicitly and only when the
// dev gate is set. Reaching end-of-chain in production surfaces the ChainError
// so the caller can offer manual entry instead of silently fabricated data.
type Mock struct {
	logger *slog.Logger
}

func NewMock(logger *slog.Logger) *Mock {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mock{logger: logger}
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) Available() bool { return true }

func (m *Mock) ExtractText(_ context.Context, _ Payload) (string, error) {
	m.logger.Warn("ocr.mock.fabricated_text_served", "hint", "development provider; not for production use")
	return mockText, nil
}
