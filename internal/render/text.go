package render

import (
	"fmt"
	"strings"
)

const textWidth = 64

// Text lays a document out as fixed-width plain text suitable for a printer
func Text(doc Document) string {
	var b strings.Builder

	sep := strings.Repeat("=", textWidth)
	line := strings.Repeat("-", textWidth)

	// Header: title and number on the left, issuer on the right
	left := []string{doc.Title, doc.InvoiceNumber}
	right := append([]string{doc.Issuer.Name}, doc.Issuer.Address...)
	writeColumns(&b, left, right, false)
	b.WriteString(sep + "\n\n")

	// Bill To next to the dates
	billTo := []string{"Bill To:", "  " + doc.Recipient.Name}
	if doc.Recipient.Email != "" {
		billTo = append(billTo, "  "+doc.Recipient.Email)
	}
	for _, l := range doc.Recipient.Address {
		billTo = append(billTo, "  "+l)
	}
	dates := make([]string, 0, len(doc.Dates))
	for _, d := range doc.Dates {
		dates = append(dates, fmt.Sprintf("%-14s %s", d.Label+":", d.Value))
	}
	writeColumns(&b, billTo, dates, true)

	b.WriteString("\n" + line + "\n")
	b.WriteString(fmt.Sprintf("%-28s %8s %12s %13s\n", "Description", "Qty", "Rate", "Amount"))
	b.WriteString(line + "\n")
	for _, row := range doc.Rows {
		b.WriteString(fmt.Sprintf("%-28s %8s %12s %13s\n",
			Truncate(row.Description, 28),
			row.Quantity,
			row.Rate,
			row.Amount,
		))
	}
	b.WriteString(line + "\n")

	b.WriteString(fmt.Sprintf("%50s %13s\n", "Subtotal:", doc.Totals.Subtotal))
	if doc.Totals.Tax != nil {
		b.WriteString(fmt.Sprintf("%50s %13s\n", doc.Totals.Tax.Label+":", doc.Totals.Tax.Amount))
	}
	b.WriteString(fmt.Sprintf("%50s %13s\n", "TOTAL:", doc.Totals.Total))

	if len(doc.Notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, n := range doc.Notes {
			b.WriteString("  " + n + "\n")
		}
	}

	b.WriteString(sep + "\n")
	pad := (textWidth - len(doc.Footer)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + doc.Footer + "\n")

	return b.String()
}

// writeColumns prints two blocks side by side; the right block is right-aligned
// unless leftAlignRight is set.
func writeColumns(b *strings.Builder, left, right []string, leftAlignRight bool) {
	half := textWidth / 2
	rows := max(len(left), len(right))
	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(left) {
			l = Truncate(left[i], half)
		}
		if i < len(right) {
			r = Truncate(right[i], half)
		}
		if leftAlignRight {
			b.WriteString(strings.TrimRight(fmt.Sprintf("%-*s%s", half, l, r), " ") + "\n")
		} else {
			b.WriteString(strings.TrimRight(fmt.Sprintf("%-*s%*s", half, l, half, r), " ") + "\n")
		}
	}
}
