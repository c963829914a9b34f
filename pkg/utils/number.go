package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MinorToMajor converts an amount in minor units (cents) to major units
func MinorToMajor(amount int64) float64 {
	return RoundWithTwoDecimalPlace(float64(amount) / 100)
}

// FormatAmount renders a major-unit amount with two decimals
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
