// Package parser turns raw OCR text into a structured receipt record via
// ordered, precedence-ranked heuristics. Receipt layouts are wildly
// inconsistent, so every field-level heuristic degrades to a sensible
// fallback instead of failing: only malformed input is an error.
package parser

import (
	"log/slog"
	"strings"
	"time"

	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/entity"
)

const (
	merchantScanLines = 5
	addressScanLines  = 10
	trailingScanLines = 15
	itemsStartWindow  = 10
)

var merchantKeywords = []string{
	"SHOP", "STORE", "MARKET", "SUPERMARKET", "RESTAURANT", "CAFE", "GARAGE", "STATION",
}

var addressKeywords = []string{
	"STREET", "ROAD", "AVENUE", "AVE", "LANE", "DRIVE", "BLVD", "BOULEVARD",
	"TEL", "PHONE", "ADDRESS",
}

var addressExcludeKeywords = []string{"DATE", "TIME", "TEL", "PHONE"}

type Parser struct {
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Parser)

// WithClock overrides the clock used for the current-date fallback. Tests
// inject a fixed clock; it is the only non-deterministic input.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

func NewParser(logger *slog.Logger, opts ...Option) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Parser{logger: logger, now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse extracts a structured record from raw receipt text. currency is the
// 3-letter code used for item formatting only. Identical input always yields
// an identical record (given an identical clock).
func (p *Parser) Parse(text, currency string) (*entity.ReceiptData, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "empty receipt text")
	}
	if ve := common.CurrencyCode("currency", currency); ve != nil {
		return nil, common.WrapError(common.ErrInvalidInput, ve.Error())
	}

	lines := splitLines(text)

	data := &entity.ReceiptData{Items: []string{}}
	merchantIdx := p.extractMerchant(lines, data)
	p.extractDate(lines, data)
	p.extractAddress(lines, merchantIdx, data)

	data.Tax = scanLabeledAmount(lines, reTaxLabel)
	data.Subtotal = scanLabeledAmount(lines, reSubtotalLabel)
	data.Amount = scanTotal(lines)

	p.extractItems(lines, currency, data)

	// No labeled or positional total anywhere: fall back to summing items.
	if data.Amount == nil && len(data.Items) > 0 {
		sum := sumItemPrices(data.Items)
		if amountInRange(sum) {
			data.Amount = &sum
		}
	}

	p.logger.Debug("parser.parse_ok",
		"merchant", data.Merchant, "date", data.Date,
		"items", len(data.Items),
		"has_amount", data.Amount != nil,
		"has_tax", data.Tax != nil,
		"has_subtotal", data.Subtotal != nil,
	)
	return data, nil
}

// extractMerchant scans the first lines for a store-type keyword; the first
// hit wins, else line 0. Returns the merchant line index.
func (p *Parser) extractMerchant(lines []string, data *entity.ReceiptData) int {
	limit := min(merchantScanLines, len(lines))
	for i := 0; i < limit; i++ {
		upper := strings.ToUpper(lines[i])
		for _, kw := range merchantKeywords {
			if strings.Contains(upper, kw) {
				data.Merchant = lines[i]
				return i
			}
		}
	}
	if len(lines) > 0 {
		data.Merchant = lines[0]
	}
	return 0
}

// extractAddress picks the first early line that looks like a street or
// contact line: has a digit and a letter, is reasonably long, and names a
// street type or contact keyword.
func (p *Parser) extractAddress(lines []string, merchantIdx int, data *entity.ReceiptData) {
	limit := min(addressScanLines, len(lines))
scan:
	for i := 0; i < limit; i++ {
		if i == merchantIdx {
			continue
		}
		upper := strings.ToUpper(lines[i])
		for _, kw := range addressExcludeKeywords {
			if strings.Contains(upper, kw) {
				continue scan
			}
		}
		if len(lines[i]) <= 10 || !hasDigit(lines[i]) || !hasLetter(lines[i]) {
			continue
		}
		for _, kw := range addressKeywords {
			if strings.Contains(upper, kw) {
				data.Address = lines[i]
				return
			}
		}
	}
}

// splitLines normalizes raw text into trimmed non-empty lines, preserving
// source order.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
