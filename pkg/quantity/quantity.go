// Package quantity reads and writes the free-text quantity strings stored on
// food items, such as "2개", "500g", "1.5kg" or a bare "3".
package quantity

import (
	"regexp"
	"strings"

	"fridgemate/domain"

	"github.com/shopspring/decimal"
)

var (
	quantityPattern = regexp.MustCompile(`(?s)^([\d.]+)\s*(.*)$`)
	decimalPrefix   = regexp.MustCompile(`^\d*(\.\d*)?`)
)

type Quantity struct {
	Magnitude decimal.Decimal
	Unit      string
}

// Parse never fails. Text without a leading number keeps the whole trimmed
// text as its unit and a zero magnitude.
func Parse(text string) Quantity {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Quantity{Magnitude: decimal.Zero}
	}

	match := quantityPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return Quantity{Magnitude: decimal.Zero, Unit: trimmed}
	}

	return Quantity{
		Magnitude: parseMagnitude(match[1]),
		Unit:      strings.TrimSpace(match[2]),
	}
}

// parseMagnitude reads the longest decimal prefix, so "1.5.2" reads as 1.5.
func parseMagnitude(digits string) decimal.Decimal {
	prefix := strings.TrimSuffix(decimalPrefix.FindString(digits), ".")
	if prefix == "" {
		return decimal.Zero
	}
	if strings.HasPrefix(prefix, ".") {
		prefix = "0" + prefix
	}

	magnitude, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return magnitude
}

func Format(magnitude decimal.Decimal, unit string) string {
	if magnitude.IsZero() {
		return "0" + unit
	}
	return magnitude.String() + unit
}

func (q Quantity) String() string {
	return Format(q.Magnitude, q.Unit)
}

func (q Quantity) IsDepleted() bool {
	return q.Magnitude.IsZero()
}

// Step adds delta to the magnitude of text and floors the result at zero.
func Step(text string, delta int) string {
	q := Parse(text)

	magnitude := q.Magnitude.Add(decimal.NewFromInt(int64(delta)))
	if magnitude.IsNegative() {
		magnitude = decimal.Zero
	}

	return Format(magnitude, q.Unit)
}

// ValidateManualEntry checks a quantity typed in directly by the user. The
// text must start with a non-negative decimal.
func ValidateManualEntry(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)

	match := quantityPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return decimal.Zero, domain.ErrInvalidQuantity
	}

	prefix := strings.TrimSuffix(decimalPrefix.FindString(match[1]), ".")
	if prefix == "" || prefix == "." {
		return decimal.Zero, domain.ErrInvalidQuantity
	}

	return parseMagnitude(match[1]), nil
}

func IsDepleted(text string) bool {
	return Parse(text).IsDepleted()
}
