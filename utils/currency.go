package utils

import (
	"fmt"
	"strings"
)

// FormatPKR formats an integer amount with thousands separators.
// Example: 15000 -> "PKR 15,000"
func FormatPKR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)

	// Tambahkan pemisah ribuan
	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	return "PKR " + sign + strings.Join(groups, ",")
}
