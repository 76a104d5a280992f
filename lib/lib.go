package lib

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var nonNumeric = regexp.MustCompile(`[^\d.\-]*`)

// ParseAmount takes a currency-ish input string, such as "₹1,00,000" or
// "2000000.50", and returns the underlying non-negative value. Anything that
// does not parse comes back as 0.
func ParseAmount(input string) float64 {
	s := nonNumeric.ReplaceAllString(strings.TrimSpace(input), "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}

	return v
}

// ParsePercentage parses a percentage field, clamping the result to [0,100].
// The second return value is false when the input does not hold a number.
func ParsePercentage(input string) (float64, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(input), "%")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return Clamp(v, 0, 100), true
}

// Round2 rounds to two decimal places, the resolution the downstream
// template works at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// FormatNumber renders a float the way the template payload expects it: no
// exponent, no trailing zeroes.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatAsCurrency converts a value to a grouped currency string for display
// purposes only; payload values stay numeric.
func FormatAsCurrency(v float64) string {
	p := message.NewPrinter(language.English)

	return p.Sprintf("₹%.2f", v)
}

// GetNowStr is a simple function that returns the current time in
// HH:MM:SS (24 hr) format.
func GetNowStr() string {
	return time.Now().Format("15:04:05")
}
