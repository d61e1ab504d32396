package hotelctx

import (
	"strconv"
	"strings"
)

// FormatVND renders an amount with dot thousands separators, e.g. 1.200.000đ.
func FormatVND(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var sb strings.Builder
	sb.WriteString(sign)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}
	sb.WriteString("đ")
	return sb.String()
}
