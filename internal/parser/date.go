package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/snapledger/snapledger/internal/entity"
)

// Ordered date patterns. Earlier patterns win on the same line; the scan
// itself is top-to-bottom, first matching line wins. "Date:"-prefixed
// variants are covered because none of the patterns are anchored.
// Dash-separated day-led dates are always DD-MM-YYYY; slash-separated ones
// fall through to the day>12 heuristic.
var datePatterns = []struct {
	re       *regexp.Regexp
	dayFirst bool
}{
	{re: regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)},
	{re: regexp.MustCompile(`\b(\d{4})/(\d{1,2})/(\d{1,2})\b`)},
	{re: regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{4})\b`), dayFirst: true},
	{re: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)},
}

// extractDate scans every line against the ordered date patterns and
// normalizes the first valid hit to YYYY-MM-DD. With no date line anywhere
// the current date is the soft fallback.
func (p *Parser) extractDate(lines []string, data *entity.ReceiptData) {
	for _, line := range lines {
		for _, pat := range datePatterns {
			m := pat.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if iso, ok := normalizeDate(m[1], m[2], m[3], pat.dayFirst); ok {
				data.Date = iso
				return
			}
		}
	}
	data.Date = p.now().Format("2006-01-02")
}

// normalizeDate resolves the three captured tokens into an ISO date.
// Year-led values pass through as Y/M/D. Otherwise a first token >12 forces
// DD/MM/YYYY and anything else defaults to MM/DD/YYYY; for first tokens <=12
// the two readings are indistinguishable and the original heuristic is kept
// as-is rather than "fixed".
func normalizeDate(a, b, c string, dayFirst bool) (string, bool) {
	na, _ := strconv.Atoi(a)
	nb, _ := strconv.Atoi(b)
	nc, _ := strconv.Atoi(c)

	var year, month, day int
	switch {
	case len(a) == 4:
		year, month, day = na, nb, nc
	case dayFirst || na > 12:
		day, month, year = na, nb, nc
	default:
		month, day, year = na, nb, nc
	}

	if !validYMD(year, month, day) {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// validYMD rejects tokens that survive the regexes but are not a real
// calendar date (month 13, Feb 30, ...).
func validYMD(year, month, day int) bool {
	if year < 1900 || year > 2200 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
