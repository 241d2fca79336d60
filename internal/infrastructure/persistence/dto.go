package persistence

import (
	"time"

	"estate_price/internal/domain"
	"estate_price/internal/domain/value"
	"estate_price/pkg/errcodes"
	"estate_price/pkg/lox"
)

type postalCodePriceSchema struct {
	PostCode  string    `db:"post_code"`
	Price     float64   `db:"price"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toPostalPrices(rows []postalCodePriceSchema) (value.PostalPrices, error) {
	prices := make(map[string]float64, len(rows))

	for _, row := range rows {
		code, ok := value.NormalizePostCode(row.PostCode)
		if !ok {
			return value.PostalPrices{}, domain.NewError(errcodes.InternalServerError, "empty post_code in postal_code_prices")
		}

		prices[code] = row.Price
	}

	return value.NewPostalPrices(prices), nil
}

func fromPostalPrices(prices value.PostalPrices, now time.Time) []postalCodePriceSchema {
	return lox.Map(prices.Codes(), func(code string) postalCodePriceSchema {
		price, _ := prices.Price(code)

		return postalCodePriceSchema{PostCode: code, Price: price, UpdatedAt: now}
	})
}
