package render

import (
	"fmt"
	"strings"
)

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatCurrency formats an amount with a currency suffix and comma
// separators, e.g. "12,345.60 LKR".
func FormatCurrency(amount float64, currency string) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	intPart := int64(amount)
	decPart := int64((amount-float64(intPart))*100 + 0.5)
	if decPart >= 100 {
		intPart++
		decPart -= 100
	}

	result := fmt.Sprintf("%s.%02d", FormatInt(int(intPart)), decPart)
	if currency != "" {
		result += " " + currency
	}
	if negative {
		result = "-" + result
	}
	return result
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// RenderText renders a TableData as a plain-text table with +-separators.
func RenderText(t *TableData) string {
	if t == nil || len(t.Columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c.Label)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	divider := func() {
		b.WriteString("+")
		for _, w := range widths {
			b.WriteString(strings.Repeat("-", w+2))
			b.WriteString("+")
		}
		b.WriteString("\n")
	}
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(&b, " %-*s |", w, cell)
		}
		b.WriteString("\n")
	}

	if t.Title != "" {
		b.WriteString(t.Title)
		b.WriteString("\n")
	}
	divider()
	labels := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		labels[i] = c.Label
	}
	writeRow(labels)
	divider()
	for _, row := range t.Rows {
		writeRow(row)
	}
	divider()
	if t.Summary != nil {
		b.WriteString(t.Summary.Label)
		for _, c := range t.Columns {
			if v, ok := t.Summary.Values[c.Key]; ok {
				fmt.Fprintf(&b, "  %s=%s", c.Label, v)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
