package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"estate_price/internal/domain"
	"estate_price/internal/domain/value"
	"estate_price/pkg/errcodes"
	"estate_price/pkg/logx"
)

type PostalCodeRepository struct {
	db *sqlx.DB
}

func NewPostalCodeRepository(db *sqlx.DB) *PostalCodeRepository {
	return &PostalCodeRepository{db: db}
}

func (r *PostalCodeRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// Load reads the whole table.
func (r *PostalCodeRepository) Load(ctx context.Context) (value.PostalPrices, error) {
	query := `SELECT post_code, price, updated_at FROM postal_code_prices`

	var rows []postalCodePriceSchema
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return value.PostalPrices{}, domain.WrapError(err, errcodes.InternalServerError, "failed to load postal prices")
	}

	prices, err := toPostalPrices(rows)
	if err != nil {
		return value.PostalPrices{}, err
	}

	logger(ctx).Info("postal prices loaded", logx.FieldRows, prices.Len())

	return prices, nil
}

// Replace swaps the table content for prices in one transaction.
func (r *PostalCodeRepository) Replace(ctx context.Context, prices value.PostalPrices) error {
	rows := fromPostalPrices(prices, time.Now())

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM postal_code_prices`); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to clear postal prices")
		}

		if len(rows) == 0 {
			return nil
		}

		query := `
			INSERT INTO postal_code_prices (post_code, price, updated_at)
			VALUES (:post_code, :price, :updated_at)`

		if _, err := tx.NamedExecContext(ctx, query, rows); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert postal prices")
		}

		return nil
	})
}
