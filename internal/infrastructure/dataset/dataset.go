package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"estate_price/internal/domain/entity"
	"estate_price/internal/domain/service/cleaning"
	"estate_price/pkg/iox"
	"estate_price/pkg/logx"
)

var ErrEmptyHeader = errors.New("dataset has no header")

// Read loads a listing export. Columns keep the order of the header.
func Read(ctx context.Context, path string) (cleaning.Frame, error) {
	rc, err := iox.Open(path)
	if err != nil {
		return cleaning.Frame{}, fmt.Errorf("iox.Open: %w", err)
	}
	defer rc.Close()

	frame, err := Decode(rc)
	if err != nil {
		return cleaning.Frame{}, fmt.Errorf("dataset.Decode(%s): %w", path, err)
	}

	logger(ctx).Info("dataset read",
		slog.String(logx.FieldPath, path),
		slog.Int(logx.FieldRows, frame.Len()),
		slog.Int(logx.FieldColumns, len(frame.Columns)),
	)

	return frame, nil
}

func Decode(r io.Reader) (cleaning.Frame, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return cleaning.Frame{}, ErrEmptyHeader
	}

	if err != nil {
		return cleaning.Frame{}, fmt.Errorf("csv.Read: %w", err)
	}

	columns := make([]string, len(header))
	copy(columns, header)

	frame := cleaning.Frame{Columns: columns}

	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return cleaning.Frame{}, fmt.Errorf("csv.Read: %w", err)
		}

		record := make(entity.PropertyRecord, len(columns))
		for i, column := range columns {
			record[column] = ParseCell(cells[i])
		}

		frame.Rows = append(frame.Rows, record)
	}

	return frame, nil
}

// ParseCell types a raw CSV cell: empty and NaN are missing, True and False
// are flags, anything numeric is a float64.
func ParseCell(raw string) any {
	switch s := strings.TrimSpace(raw); s {
	case "", "NaN", "nan":
		return nil
	case "True", "true":
		return true
	case "False", "false":
		return false
	default:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}

		return s
	}
}

// Write stores the frame as CSV, compressed by the path suffix.
func Write(ctx context.Context, path string, frame cleaning.Frame) error {
	wc, err := iox.Create(path)
	if err != nil {
		return fmt.Errorf("iox.Create: %w", err)
	}

	if err = Encode(wc, frame); err != nil {
		_ = wc.Close()

		return fmt.Errorf("dataset.Encode(%s): %w", path, err)
	}

	if err = wc.Close(); err != nil {
		return fmt.Errorf("writeCloser.Close: %w", err)
	}

	logger(ctx).Info("dataset written",
		slog.String(logx.FieldPath, path),
		slog.Int(logx.FieldRows, frame.Len()),
		slog.Int(logx.FieldColumns, len(frame.Columns)),
	)

	return nil
}

func Encode(w io.Writer, frame cleaning.Frame) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(frame.Columns); err != nil {
		return fmt.Errorf("csv.Write: %w", err)
	}

	cells := make([]string, len(frame.Columns))

	for _, row := range frame.Rows {
		for i, column := range frame.Columns {
			cell, err := FormatCell(row[column])
			if err != nil {
				return fmt.Errorf("column %s: %w", column, err)
			}

			cells[i] = cell
		}

		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("csv.Write: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv.Flush: %w", err)
	}

	return nil
}

func FormatCell(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case bool:
		if v {
			return "True", nil
		}

		return "False", nil
	case float64:
		if math.IsNaN(v) {
			return "", nil
		}

		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("cast.ToStringE: %w", err)
	}

	return s, nil
}
