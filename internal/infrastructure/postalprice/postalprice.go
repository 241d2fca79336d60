// Package postalprice loads the postal code reference price table from a
// JSON or CSV file.
package postalprice

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"estate_price/internal/domain/value"
	"estate_price/pkg/iox"
	"estate_price/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var ErrUnsupportedFormat = errors.New("unsupported postal price file")

type FileSource struct {
	path string
}

func NewFileSource(path string) FileSource {
	return FileSource{path: path}
}

func (s FileSource) Load(ctx context.Context) (value.PostalPrices, error) {
	r, err := iox.Open(s.path)
	if err != nil {
		return value.PostalPrices{}, fmt.Errorf("iox.Open: %w", err)
	}
	defer r.Close()

	var prices map[string]float64

	switch ext := strings.ToLower(filepath.Ext(iox.TrimCompression(s.path))); ext {
	case ".json":
		prices, err = ReadJSON(r)
	case ".csv":
		prices, err = ReadCSV(r)
	default:
		return value.PostalPrices{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return value.PostalPrices{}, fmt.Errorf("postalprice.Load %s: %w", s.path, err)
	}

	logger(ctx).Info("postal prices loaded", logx.FieldPath, s.path, logx.FieldRows, len(prices))

	return value.NewPostalPrices(prices), nil
}

// ReadJSON decodes an object mapping postal codes to prices.
func ReadJSON(r io.Reader) (map[string]float64, error) {
	var raw map[string]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	prices := make(map[string]float64, len(raw))

	for code, price := range raw {
		if err := put(prices, code, price); err != nil {
			return nil, err
		}
	}

	return prices, nil
}

// ReadCSV reads postCode,price rows. A first row whose price does not parse
// is taken as the header.
func ReadCSV(r io.Reader) (map[string]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	prices := make(map[string]float64)

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("csv.Read: %w", err)
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if line == 1 {
				continue
			}

			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if err := put(prices, rec[0], price); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	return prices, nil
}

func put(prices map[string]float64, rawCode string, price float64) error {
	code, ok := value.NormalizePostCode(rawCode)
	if !ok {
		return errors.New("empty postal code")
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("postal code %s: non-finite price", code)
	}

	if _, dup := prices[code]; dup {
		return fmt.Errorf("postal code %s listed twice", code)
	}

	prices[code] = price

	return nil
}
