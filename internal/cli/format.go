// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a monetary amount with comma grouping and two
// decimal places. e.g., 186163.52 -> "186,163.52"
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	out := groupThousands(intPart) + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatSignedMoney formats a variance with an explicit sign.
// e.g., 1200.5 -> "+1,200.50", -300 -> "-300.00"
func FormatSignedMoney(d decimal.Decimal) string {
	if d.Sign() >= 0 {
		return "+" + FormatMoney(d)
	}
	return FormatMoney(d)
}

// FormatPercent formats an integer percentage. e.g., 94 -> "94%"
func FormatPercent(pct int64) string {
	return strconv.FormatInt(pct, 10) + "%"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCompact formats a monetary amount with human-readable suffixes
// for tight chart labels. e.g., 186163.52 -> "186.2K"
func FormatCompact(d decimal.Decimal) string {
	f, _ := d.Float64()
	abs := f
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", f/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", f/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", f/1_000)
	default:
		return fmt.Sprintf("%.0f", f)
	}
}
