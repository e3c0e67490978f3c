package scoring

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// money renders a currency amount with thousands separators, e.g. $140,000.
func money(amount int) string {
	return message.NewPrinter(language.English).Sprintf("$%d", amount)
}

// percentOf returns value/target*100, or 0 when target is 0.
func percentOf(value, target int) float64 {
	if target == 0 {
		return 0
	}
	return float64(value) / float64(target) * 100
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
