package utils

import (
	"math"
	"strconv"
)

// Round1 rounds to one decimal place, half away from zero. Ratings and
// prices are stored in this form.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// FormatMinutes renders a fractional minute count in its shortest decimal
// form: 60 -> "60", 59.5 -> "59.5".
func FormatMinutes(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}

// ParseInt converts string to int64, returning ok=false on garbage.
func ParseInt(value string) (int64, bool) {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return result, true
}
