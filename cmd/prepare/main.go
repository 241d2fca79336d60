// Command prepare cleans a raw listing export into a training dataset and
// optionally seeds the postal price table in Postgres.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"estate_price/internal/config"
	"estate_price/internal/domain/service/cleaning"
	"estate_price/internal/domain/service/encoding"
	"estate_price/internal/infrastructure/dataset"
	"estate_price/internal/infrastructure/persistence"
	"estate_price/internal/infrastructure/postalprice"
	"estate_price/pkg/application/connectors"
	"estate_price/pkg/contextx"
	"estate_price/pkg/logx"
)

var errUsage = errors.New("both -in and -out are required")

type options struct {
	in           string
	out          string
	postalPrices string
	seedPostgres bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Default().Error("prepare failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

func parseOptions(args []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)

	var opts options

	fs.StringVar(&opts.in, "in", "", "raw listing CSV (.csv, .csv.gz, .csv.zst)")
	fs.StringVar(&opts.out, "out", "", "cleaned dataset CSV, compressed by suffix")
	fs.StringVar(&opts.postalPrices, "postal-prices", cfg.Model.PostalPricesPath, "postal code price table")
	fs.BoolVar(&opts.seedPostgres, "seed-postgres", false, "replace the postal price table in PG_DSN")

	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("flagSet.Parse: %w", err)
	}

	if opts.in == "" || opts.out == "" {
		return options{}, errUsage
	}

	return opts, nil
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := slog.New(logx.NewHandler(os.Stderr, cfg.App.LogFormat, cfg.App.LogLevel))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	opts, err := parseOptions(args, cfg)
	if err != nil {
		return err
	}

	prices, err := postalprice.NewFileSource(opts.postalPrices).Load(ctx)
	if err != nil {
		return fmt.Errorf("fileSource.Load: %w", err)
	}

	raw, err := dataset.Read(ctx, opts.in)
	if err != nil {
		return fmt.Errorf("dataset.Read: %w", err)
	}

	clean, err := cleaning.Dataset(encoding.NewEncoder(prices)).Run(ctx, raw)
	if err != nil {
		return fmt.Errorf("pipeline.Run: %w", err)
	}

	log.Info("dataset cleaned",
		slog.Int("rows-in", raw.Len()),
		slog.Int(logx.FieldRows, clean.Len()),
		slog.Int(logx.FieldColumns, len(clean.Columns)),
	)

	if err = dataset.Write(ctx, opts.out, clean); err != nil {
		return fmt.Errorf("dataset.Write: %w", err)
	}

	if !opts.seedPostgres {
		return nil
	}

	if !cfg.Postgres.Enabled() {
		return errors.New("-seed-postgres needs PG_DSN")
	}

	pg := &connectors.Postgres{ //nolint:exhaustruct
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	defer pg.Close(ctx)

	if err = persistence.NewPostalCodeRepository(pg.Client(ctx)).Replace(ctx, prices); err != nil {
		return fmt.Errorf("postalCodeRepository.Replace: %w", err)
	}

	log.Info("postal prices seeded", slog.Int(logx.FieldRows, prices.Len()))

	return nil
}
