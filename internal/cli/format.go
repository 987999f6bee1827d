// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAmount adds comma separators to a whole-currency amount.
// e.g., 1234567 -> "1,234,567"
func FormatAmount(n int64) string {
	if n < 0 {
		return "-" + FormatAmount(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatMoney renders an amount with the configured currency suffix.
// e.g., 890000 with suffix "원" -> "890,000원"
func FormatMoney(n int64, suffix string) string {
	return FormatAmount(n) + suffix
}

// FormatPercent formats a 0-1 ratio as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatMonthsLeft formats an estimated-months-remaining value.
func FormatMonthsLeft(m float64) string {
	return fmt.Sprintf("%.1f개월", m)
}

// FormatPriority renders a priority for display; unset priorities show
// as a dash rather than the 999 sort sentinel.
func FormatPriority(p int) string {
	if p < 1 {
		return "-"
	}
	return strconv.Itoa(p)
}
