package tui

import (
	"github.com/andy/invoicer/internal/render"
	"github.com/shopspring/decimal"
)

// formatMoney formats money with the configured currency symbol
func formatMoney(symbol string, amount decimal.Decimal) string {
	if symbol == "" {
		symbol = render.DefaultCurrencySymbol
	}
	return render.FormatMoney(symbol, amount)
}
