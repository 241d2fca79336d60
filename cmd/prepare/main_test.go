package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"estate_price/internal/config"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	cfg := config.Config{} //nolint:exhaustruct
	cfg.Model.PostalPricesPath = "data/postal_code_prices.json"

	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{"-in", "raw.csv", "-out", "clean.csv.zst"},
			want: options{in: "raw.csv", out: "clean.csv.zst", postalPrices: "data/postal_code_prices.json"},
		},
		{
			name: "overrides",
			args: []string{"-in", "raw.csv", "-out", "clean.csv", "-postal-prices", "p.csv", "-seed-postgres"},
			want: options{in: "raw.csv", out: "clean.csv", postalPrices: "p.csv", seedPostgres: true},
		},
		{name: "missing out", args: []string{"-in", "raw.csv"}, wantErr: true},
		{name: "unknown flag", args: []string{"-bogus"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			got, err := parseOptions(tt.args, cfg)
			if tt.wantErr {
				rq.Error(err)

				return
			}

			rq.NoError(err)
			rq.Equal(tt.want, got)
		})
	}
}
