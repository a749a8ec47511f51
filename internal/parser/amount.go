package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Amounts outside this open interval are treated as OCR noise (phone numbers,
// card digits, barcode fragments).
const (
	amountMin = 0.0
	amountMax = 100000.0
)

var paymentKeywords = []string{
	"CHANGE", "CASH", "CARD", "DEBIT", "CREDIT", "BALANCE", "REFUND", "RETURN",
}

var (
	// Label-anchored: a specific word must precede the number. Longer labels
	// first so GRAND TOTAL does not half-match as TOTAL. The trailing \b keeps
	// the separator-aware branch from stopping after three digits of an
	// unseparated amount like 1234.56.
	reTotalLabel    = regexp.MustCompile(`(?i)\b(?:GRAND\s+TOTAL|TOTAL\s+DUE|TOTAL|AMOUNT)\b\s*:?\s*\$?(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?)\b`)
	reTaxLabel      = regexp.MustCompile(`(?i)\b(?:TAX|VAT|GST)\b\s*:?\s*\$?(\d{1,3}(?:,\d{3})*\.\d{1,2}|\d+\.\d{1,2})\b`)
	reSubtotalLabel = regexp.MustCompile(`(?i)\bSUB\s*-?\s*TOTAL\b\s*:?\s*\$?(\d{1,3}(?:,\d{3})*\.\d{1,2}|\d+\.\d{1,2})\b`)

	// Positional: a trailing two-decimal number regardless of label.
	rePositionalAmount = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2})\s*$`)
)

// scanTotal resolves the grand total from the trailing lines. Lines carrying
// a payment/settlement keyword are skipped outright: CASH and CHANGE amounts
// are settlement, not the charged total. Over the retained lines, scanned
// backward, a label-anchored match anywhere beats a positional match
// anywhere; within each pass the first (bottom-most) qualifying amount wins.
func scanTotal(lines []string) *float64 {
	start := len(lines) - trailingScanLines
	if start < 0 {
		start = 0
	}

	retained := make([]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		if containsAny(strings.ToUpper(line), paymentKeywords) {
			continue
		}
		retained = append(retained, line)
	}

	for i := len(retained) - 1; i >= 0; i-- {
		if m := reTotalLabel.FindStringSubmatch(retained[i]); m != nil {
			if v, ok := parseAmount(m[1]); ok {
				return &v
			}
		}
	}
	for i := len(retained) - 1; i >= 0; i-- {
		if m := rePositionalAmount.FindStringSubmatch(retained[i]); m != nil {
			if v, ok := parseAmount(m[1]); ok {
				return &v
			}
		}
	}
	return nil
}

// scanLabeledAmount is the forward scan used for tax and subtotal: first
// label-anchored match wins. Label anchoring already disambiguates, so the
// payment-keyword skip list does not apply here.
func scanLabeledAmount(lines []string, re *regexp.Regexp) *float64 {
	for _, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			if v, ok := parseAmount(m[1]); ok {
				return &v
			}
		}
	}
	return nil
}

// parseAmount strips thousands separators, converts, and bounds-checks.
func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if !amountInRange(v) {
		return 0, false
	}
	return v, true
}

func amountInRange(v float64) bool {
	return v > amountMin && v < amountMax
}

func containsAny(upper string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}
