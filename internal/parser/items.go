package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/snapledger/snapledger/internal/entity"
)

// Extended skip set for the item window: any line carrying one of these is a
// header, summary, or settlement line, never a purchasable item.
var itemSkipKeywords = []string{
	"TOTAL", "TAX", "SUBTOTAL", "CASH", "CHANGE", "THANK", "DATE", "TIME",
	"CASHIER", "RECEIPT", "INVOICE", "AMOUNT", "DUE", "PAID", "BALANCE",
	"DISCOUNT", "SALE", "SPECIAL", "PROMO", "CARD", "DEBIT", "CREDIT",
	"REFUND", "RETURN", "EXCHANGE", "VAT", "GST", "SERVICE", "CHARGE",
}

var itemsHeaderKeywords = []string{"ITEM", "PRODUCT", "DESCRIPTION"}

const amt = `(\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2})`

// reMultiItem matches "name - [CUR] amount" repeated on a single line, the
// layout some OCR engines produce when receipt columns collapse.
var reMultiItem = regexp.MustCompile(`([A-Za-z][A-Za-z0-9 .'&/]*?)\s*-\s*(?:[A-Z]{3}\s+)?` + amt)

// itemMatch is one extracted line item before formatting.
type itemMatch struct {
	name  string
	price float64
}

// itemMatcher is a pure structural matcher: line in, optional match out.
// Matchers are tried strictly in order and the first hit wins, which makes
// the precedence rules explicit and independently testable.
type itemMatcher func(line string) (itemMatch, bool)

var singleItemMatchers = []itemMatcher{
	matchPlainTrailing,
	matchQtyAtPrice,
	matchLeadingQty,
	matchTwoTrailing,
	matchDashCurrency,
	matchDollarSuffix,
	matchCurrencySuffix,
}

var (
	rePlainTrailing  = regexp.MustCompile(`^(.+?)\s+\$?` + amt + `$`)
	reQtyAtPrice     = regexp.MustCompile(`(?i)^(.+?)\s+x\s*(\d+)\s*@\s*\$?` + amt + `$`)
	reLeadingQty     = regexp.MustCompile(`^(\d+)\s+(.+?)\s+\$?` + amt + `$`)
	reTwoTrailing    = regexp.MustCompile(`^(.+?)\s+\$?` + amt + `\s+\$?` + amt + `$`)
	reDashCurrency   = regexp.MustCompile(`^(.+?)\s*-\s*[A-Z]{3}\s+` + amt + `$`)
	reDollarSuffix   = regexp.MustCompile(`^(.+?)\s*\$` + amt + `$`)
	reCurrencySuffix = regexp.MustCompile(`^(.+?)\s+` + amt + `\s*[A-Z]{3}$`)

	// Last-resort patterns for mangled lines that still carry a price.
	lastResortPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(.*?[A-Za-z].*?)\s+` + amt + `\s*\D{0,3}$`),
		regexp.MustCompile(`^(.*?[A-Za-z].*?)` + amt),
	}

	reTrailingAmountInName = regexp.MustCompile(`\d\.\d{2}$`)
)

// extractItems walks the item window and emits each accepted line in source
// order as "<name> - <CUR> <price>". No de-duplication: two identical lines
// are two purchases.
func (p *Parser) extractItems(lines []string, currency string, data *entity.ReceiptData) {
	start := itemsStart(lines)
	end := itemsEnd(lines)

	for i := start; i < end && i < len(lines); i++ {
		line := lines[i]
		if line == "" || containsAny(strings.ToUpper(line), itemSkipKeywords) {
			continue
		}

		// Multi-item lines first: two or more "name - amount" pairs on one
		// physical line beat every single-item reading.
		if multi := reMultiItem.FindAllStringSubmatch(line, -1); len(multi) >= 2 {
			for _, m := range multi {
				price, ok := parseAmount(m[2])
				if !ok || matchesResolved(price, data) {
					continue
				}
				data.Items = append(data.Items, formatItem(m[1], currency, price))
			}
			continue
		}

		if item, ok := matchSingleItem(line); ok {
			if !matchesResolved(item.price, data) {
				data.Items = append(data.Items, formatItem(item.name, currency, item.price))
			}
			continue
		}

		// Last resort: the line still looks like "words with a number".
		if hasDigit(line) && hasLetter(line) {
			for _, re := range lastResortPatterns {
				m := re.FindStringSubmatch(line)
				if m == nil {
					continue
				}
				if price, ok := parseAmount(m[2]); ok {
					data.Items = append(data.Items, formatItem(m[1], currency, price))
					break
				}
			}
		}
	}
}

// itemsStart is the first early line that looks like the top of the item
// block: an ITEM/PRODUCT/DESCRIPTION header or a line starting with a digit.
func itemsStart(lines []string) int {
	limit := min(itemsStartWindow, len(lines))
	for i := 0; i < limit; i++ {
		upper := strings.ToUpper(lines[i])
		if containsAny(upper, itemsHeaderKeywords) {
			return i
		}
		if len(lines[i]) > 0 && lines[i][0] >= '0' && lines[i][0] <= '9' {
			return i
		}
	}
	return 0
}

// itemsEnd is the bottom-most trailing line carrying a skip keyword, found by
// scanning the last lines backward; everything from it on is summary footer.
func itemsEnd(lines []string) int {
	start := len(lines) - trailingScanLines
	if start < 0 {
		start = 0
	}
	for i := len(lines) - 1; i >= start; i-- {
		if containsAny(strings.ToUpper(lines[i]), itemSkipKeywords) {
			return i
		}
	}
	return len(lines)
}

func matchSingleItem(line string) (itemMatch, bool) {
	for _, m := range singleItemMatchers {
		if item, ok := m(line); ok && amountInRange(item.price) {
			return item, true
		}
	}
	return itemMatch{}, false
}

// matchPlainTrailing handles the most common layout: name then one trailing
// amount. Declines when the name part itself ends in an amount, starts with a
// digit, or the line carries the "- CUR" or "x N @" shapes, so the more
// specific matchers further down the list get their turn.
func matchPlainTrailing(line string) (itemMatch, bool) {
	m := rePlainTrailing.FindStringSubmatch(line)
	if m == nil {
		return itemMatch{}, false
	}
	name := strings.TrimSpace(m[1])
	if name == "" || !hasLetterPrefix(name) ||
		reTrailingAmountInName.MatchString(name) ||
		reDashCurrency.MatchString(line) ||
		reQtyAtPrice.MatchString(line) {
		return itemMatch{}, false
	}
	price, ok := parseAmount(m[2])
	if !ok {
		return itemMatch{}, false
	}
	return itemMatch{name: cleanName(m[1]), price: price}, true
}

// matchQtyAtPrice handles "name x 3 @ 1.50": the line total is qty * unit.
func matchQtyAtPrice(line string) (itemMatch, bool) {
	m := reQtyAtPrice.FindStringSubmatch(line)
	if m == nil {
		return itemMatch{}, false
	}
	qty, err := strconv.Atoi(m[2])
	if err != nil || qty <= 0 {
		return itemMatch{}, false
	}
	unit, ok := parseAmount(m[3])
	if !ok {
		return itemMatch{}, false
	}
	return itemMatch{name: cleanName(m[1]), price: float64(qty) * unit}, true
}

// matchLeadingQty handles "2 MILK 3.75".
func matchLeadingQty(line string) (itemMatch, bool) {
	m := reLeadingQty.FindStringSubmatch(line)
	if m == nil {
		return itemMatch{}, false
	}
	price, ok := parseAmount(m[3])
	if !ok {
		return itemMatch{}, false
	}
	return itemMatch{name: cleanName(m[2]), price: price}, true
}

// matchTwoTrailing handles "name unit total": the second amount is the line
// total.
func matchTwoTrailing(line string) (itemMatch, bool) {
	m := reTwoTrailing.FindStringSubmatch(line)
	if m == nil {
		return itemMatch{}, false
	}
	price, ok := parseAmount(m[3])
	if !ok {
		return itemMatch{}, false
	}
	return itemMatch{name: cleanName(m[1]), price: price}, true
}

func matchDashCurrency(line string) (itemMatch, bool) {
	m := reDashCurrency.FindStringSubmatch(line)
	if m == nil {
		return itemMatch{}, false
	}
	price, ok := parseAmount(m[2])
	if !ok {
		return itemMatch{}, false
	}
	return itemMatch{name: cleanName(m[1]), price: price}, true
}

func matchDollarSuffix(line string) (itemMatch, bool) {
	m := reDollarSuffix.FindStringSubmatch(line)
	if m == nil {
		return itemMatch{}, false
	}
	price, ok := parseAmount(m[2])
	if !ok {
		return itemMatch{}, false
	}
	return itemMatch{name: cleanName(m[1]), price: price}, true
}

func matchCurrencySuffix(line string) (itemMatch, bool) {
	m := reCurrencySuffix.FindStringSubmatch(line)
	if m == nil {
		return itemMatch{}, false
	}
	price, ok := parseAmount(m[2])
	if !ok {
		return itemMatch{}, false
	}
	return itemMatch{name: cleanName(m[1]), price: price}, true
}

// matchesResolved reports whether a candidate price duplicates the resolved
// total or subtotal, a sign the "item" is really a summary row.
func matchesResolved(price float64, data *entity.ReceiptData) bool {
	if data.Amount != nil && price == *data.Amount {
		return true
	}
	if data.Subtotal != nil && price == *data.Subtotal {
		return true
	}
	return false
}

func formatItem(name, currency string, price float64) string {
	return fmt.Sprintf("%s - %s %.2f", cleanName(name), currency, price)
}

func cleanName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, ".,;:-_*")
	return strings.TrimSpace(name)
}

func hasLetterPrefix(s string) bool {
	return len(s) > 0 && ((s[0] >= 'A' && s[0] <= 'Z') || (s[0] >= 'a' && s[0] <= 'z'))
}

// sumItemPrices re-reads the formatted item strings; the trailing token is
// always the two-decimal price.
func sumItemPrices(items []string) float64 {
	var sum float64
	for _, it := range items {
		idx := strings.LastIndex(it, " ")
		if idx < 0 {
			continue
		}
		if v, err := strconv.ParseFloat(it[idx+1:], 64); err == nil {
			sum += v
		}
	}
	return sum
}
