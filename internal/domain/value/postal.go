package value

import (
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// PostalPrices is a read-only postal code to reference price table.
type PostalPrices struct {
	prices map[string]float64
}

func NewPostalPrices(prices map[string]float64) PostalPrices {
	return PostalPrices{prices: maps.Clone(prices)}
}

func (p PostalPrices) Price(postCode string) (float64, bool) {
	price, ok := p.prices[postCode]
	return price, ok
}

func (p PostalPrices) Len() int {
	return len(p.prices)
}

// Codes returns the known postal codes in ascending order.
func (p PostalPrices) Codes() []string {
	return slices.Sorted(maps.Keys(p.prices))
}

// NormalizePostCode renders a raw postal code (string or number) as the table
// key. Integral floats lose their decimal part; anything else yields false.
func NormalizePostCode(raw any) (string, bool) {
	if raw == nil {
		return "", false
	}

	if _, isBool := raw.(bool); isBool {
		return "", false
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", false
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".0")

	return s, s != ""
}
