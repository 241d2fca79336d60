package encoding

import (
	"context"
	"math"

	"github.com/spf13/cast"

	"estate_price/internal/domain"
	"estate_price/internal/domain/value"
)

// Encoder turns categorical attributes into numbers. Unknown categories map
// to the first entry of their table unless the encoder is strict.
type Encoder struct {
	prices value.PostalPrices
	strict bool
}

func NewEncoder(prices value.PostalPrices) *Encoder {
	return &Encoder{prices: prices}
}

func (e *Encoder) WithStrict(strict bool) *Encoder {
	e.strict = strict
	return e
}

func (e *Encoder) Strict() bool {
	return e.strict
}

// Ordinal encodes raw with table. A whole number within the table is treated
// as already encoded; any other number is an unknown category.
func (e *Encoder) Ordinal(ctx context.Context, table value.Ordinal, raw any) (float64, error) {
	if n, ok := asNumber(raw); ok {
		if isCode(table, n) {
			return n, nil
		}
	} else {
		category, _ := raw.(string)
		if code, ok := table.Code(category); ok {
			return float64(code), nil
		}
	}

	if e.strict {
		return 0, domain.UnknownCategory(table.Name(), raw)
	}

	logger(ctx).Debug("unknown category, using first entry",
		"field", table.Name(),
		"value", raw,
	)

	return 0, nil
}

// PostalPrice returns the reference price of the postal code in raw.
func (e *Encoder) PostalPrice(ctx context.Context, field string, raw any) (float64, error) {
	code, ok := value.NormalizePostCode(raw)
	if ok {
		if price, found := e.prices.Price(code); found {
			return price, nil
		}
	}

	if e.strict {
		return 0, domain.UnknownCategory(field, raw)
	}

	logger(ctx).Debug("unknown postal code, using 0", "field", field, "value", raw)

	return 0, nil
}

// EPCKwh estimates the yearly primary energy use per m² for an EPC label
// given in province.
func (e *Encoder) EPCKwh(ctx context.Context, label, province any) (float64, error) {
	provinceName, _ := province.(string)

	region, ok := value.RegionOf(provinceName)
	if !ok {
		if e.strict {
			return 0, domain.UnknownCategory("province", province)
		}

		region = value.Regions[0]
	}

	labelName, _ := label.(string)

	kwh, ok := value.EPCKwh(region, labelName)
	if !ok {
		if e.strict {
			return 0, domain.UnknownCategory("epcScore", label)
		}

		kwh, _ = value.EPCKwh(region, value.EPCLabels[0])
	}

	return kwh, nil
}

func isCode(table value.Ordinal, n float64) bool {
	return n == math.Trunc(n) && n >= 0 && n < float64(table.Len())
}

func asNumber(raw any) (float64, bool) {
	switch raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
	default:
		return 0, false
	}

	n := cast.ToFloat64(raw)
	if math.IsNaN(n) {
		return 0, false
	}

	return n, true
}
