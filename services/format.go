package services

import (
	"fmt"
	"strings"
)

// Placeholder substitutes for any missing value in exported documents so
// the fixed layout never renders a blank field.
const Placeholder = "N/A"

// OrPlaceholder returns the trimmed value, or Placeholder when empty.
func OrPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}
	return s
}

// FormatINR formats an amount in Indian Rupee notation: after the
// rightmost 3 digits, digits group in pairs (₹1,23,45,678.90), always with
// 2 decimal places.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := "₹" + indianGroups(parts[0]) + "." + parts[1]
	if negative {
		return "-" + result
	}
	return result
}

// indianGroups inserts commas using the Indian numbering system: the
// rightmost 3 digits form the first group, then pairs.
func indianGroups(s string) string {
	if len(s) <= 3 {
		return s
	}
	result := s[len(s)-3:]
	rest := s[:len(s)-3]
	for len(rest) > 2 {
		result = rest[len(rest)-2:] + "," + result
		rest = rest[:len(rest)-2]
	}
	return rest + "," + result
}

// FormatWeight renders a weight in kilograms for documents, dropping the
// decimals when the value is whole.
func FormatWeight(kg float64) string {
	if kg == float64(int64(kg)) {
		return fmt.Sprintf("%d Kg", int64(kg))
	}
	return fmt.Sprintf("%.2f Kg", kg)
}
