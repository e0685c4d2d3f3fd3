// Package money formats naira amounts for receipts and reports.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const NairaSign = "₦"

// Format renders an amount with comma grouping, keeping two decimals only
// when the amount is fractional: 40000 -> "40,000", 4837.5 -> "4,837.50".
func Format(amount float64) string {
	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))

	whole := cents / 100
	frac := cents % 100

	out := group(strconv.FormatInt(whole, 10))

	if frac > 0 {
		out += fmt.Sprintf(".%02d", frac)
	}

	if negative {
		out = "-" + out
	}

	return out
}

// FormatNaira prefixes the currency sign: FormatNaira(4837.5) -> "₦4,837.50".
func FormatNaira(amount float64) string {
	return NairaSign + Format(amount)
}

func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder

	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}

		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// Percent renders a ratio as a fixed two-decimal percentage, e.g. 66.67%.
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}
