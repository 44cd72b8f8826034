package render

import (
	"strings"
	"time"

	"github.com/andy/invoicer/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes money when none is configured
const DefaultCurrencySymbol = "₹"

const longDateLayout = "January 2, 2006"

// FormatMoney renders an amount as "<symbol>X.XX": exactly two decimals,
// rounded half away from zero, no digit grouping.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// FormatDate turns a stored "2006-01-02" date into "January 2, 2006".
// Strings that do not parse are returned unchanged.
func FormatDate(s string) string {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return t.Format(longDateLayout)
}

// splitLines breaks a free-text block into display lines. A literal "\n"
// typed into a single-line input counts as a line break.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

// Truncate shortens s to maxLen runes with an ellipsis
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
