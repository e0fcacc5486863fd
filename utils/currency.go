package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var nonAmountRe = regexp.MustCompile(`[^\d.]`)

// ParseAmount sanitizes a user-entered amount: currency symbols and
// thousands separators are stripped, unparsable values become 0.
func ParseAmount(v string) float64 {
	raw := nonAmountRe.ReplaceAllString(v, "")
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatCurrency renders colones without decimals, e.g. "₡1,500".
func FormatCurrency(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return fmt.Sprintf("%s₡%s", sign, s)
}
