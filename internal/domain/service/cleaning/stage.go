package cleaning

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"estate_price/internal/domain"
	"estate_price/internal/domain/entity"
	"estate_price/internal/domain/value"
	"estate_price/pkg/logx"
)

// Stage is one step of a Pipeline. Transform never modifies its input frame.
type Stage interface {
	Name() string
	Transform(ctx context.Context, f Frame) (Frame, error)
}

// CategoricalEncoder encodes the categorical attributes of a record.
type CategoricalEncoder interface {
	Ordinal(ctx context.Context, table value.Ordinal, raw any) (float64, error)
	PostalPrice(ctx context.Context, field string, raw any) (float64, error)
	EPCKwh(ctx context.Context, label, province any) (float64, error)
}

type stageFunc struct {
	name string
	fn   func(ctx context.Context, f Frame) (Frame, error)
}

func (s stageFunc) Name() string {
	return s.name
}

func (s stageFunc) Transform(ctx context.Context, f Frame) (Frame, error) {
	return s.fn(ctx, f.clone())
}

// NewStage wraps fn as a named stage. fn receives a private copy of the frame.
func NewStage(name string, fn func(ctx context.Context, f Frame) (Frame, error)) Stage {
	return stageFunc{name: name, fn: fn}
}

// DropColumns removes columns; every one of them must exist.
func DropColumns(columns ...string) Stage {
	return NewStage("drop_columns", func(_ context.Context, f Frame) (Frame, error) {
		for _, c := range columns {
			if !f.HasColumn(c) {
				return Frame{}, domain.MissingField(c)
			}
		}

		f.Columns = slices.DeleteFunc(f.Columns, func(c string) bool {
			return slices.Contains(columns, c)
		})

		for _, r := range f.Rows {
			for _, c := range columns {
				delete(r, c)
			}
		}

		return f, nil
	})
}

// DropNA removes rows with a missing value in any of columns.
func DropNA(columns ...string) Stage {
	return NewStage("drop_na", func(ctx context.Context, f Frame) (Frame, error) {
		before := f.Len()

		f.Rows = slices.DeleteFunc(f.Rows, func(r entity.PropertyRecord) bool {
			return slices.ContainsFunc(columns, func(c string) bool { return isMissing(r, c) })
		})

		if dropped := before - f.Len(); dropped > 0 {
			logger(ctx).Debug("rows dropped", logx.FieldStage, "drop_na", logx.FieldRows, dropped)
		}

		return f, nil
	})
}

// DropDuplicates keeps the first row of every distinct combination of columns.
func DropDuplicates(columns ...string) Stage {
	return NewStage("drop_duplicates", func(_ context.Context, f Frame) (Frame, error) {
		seen := make(map[string]struct{}, f.Len())

		f.Rows = slices.DeleteFunc(f.Rows, func(r entity.PropertyRecord) bool {
			parts := make([]string, len(columns))
			for i, c := range columns {
				parts[i] = fmt.Sprintf("%#v", r[c])
			}

			key := strings.Join(parts, "\x00")
			if _, ok := seen[key]; ok {
				return true
			}

			seen[key] = struct{}{}

			return false
		})

		return f, nil
	})
}

// FillNA replaces missing cells of columns with v.
func FillNA(v any, columns ...string) Stage {
	return NewStage("fill_na", func(_ context.Context, f Frame) (Frame, error) {
		fill(f, columns, func(string) any { return v })
		return f, nil
	})
}

// FillMedian replaces missing cells with the truncated median of the column.
// The median comes from the frame being transformed, so results depend on
// the batch.
func FillMedian(columns ...string) Stage {
	return NewStage("fill_median", func(_ context.Context, f Frame) (Frame, error) {
		medians := make(map[string]any, len(columns))

		for _, c := range columns {
			m, err := median(f, c)
			if err != nil {
				return Frame{}, err
			}

			medians[c] = int(m)
		}

		fill(f, columns, func(c string) any { return medians[c] })

		return f, nil
	})
}

// FillMode replaces missing cells with the most frequent value of the column;
// ties go to the smallest value. Like FillMedian it depends on the batch.
func FillMode(columns ...string) Stage {
	return NewStage("fill_mode", func(_ context.Context, f Frame) (Frame, error) {
		modes := make(map[string]any, len(columns))

		for _, c := range columns {
			m, ok := mode(f, c)
			if !ok {
				return Frame{}, domain.MissingField(c)
			}

			modes[c] = m
		}

		fill(f, columns, func(c string) any { return modes[c] })

		return f, nil
	})
}

// ComputeEPCKwh adds the epc_kwh column derived from epcScore and province.
// Rows without an epcScore get a missing epc_kwh.
func ComputeEPCKwh(enc CategoricalEncoder) Stage {
	return NewStage("compute_epc_kwh", func(ctx context.Context, f Frame) (Frame, error) {
		for _, c := range []string{entity.FieldEPCScore, entity.FieldProvince} {
			if !f.HasColumn(c) {
				return Frame{}, domain.MissingField(c)
			}
		}

		for _, r := range f.Rows {
			if isMissing(r, entity.FieldEPCScore) {
				r[entity.FieldEPCKwh] = nil
				continue
			}

			kwh, err := enc.EPCKwh(ctx, r[entity.FieldEPCScore], r[entity.FieldProvince])
			if err != nil {
				return Frame{}, fmt.Errorf("cleaning.ComputeEPCKwh: %w", err)
			}

			r[entity.FieldEPCKwh] = kwh
		}

		return f.withColumn(entity.FieldEPCKwh), nil
	})
}

// EncodeCategoricals replaces subtype, kitchenType and buildingCondition with
// their ordinals and postCode with its reference price.
func EncodeCategoricals(enc CategoricalEncoder) Stage {
	ordinals := []struct {
		column string
		table  value.Ordinal
	}{
		{entity.FieldSubtype, value.Subtypes},
		{entity.FieldKitchenType, value.KitchenTypes},
		{entity.FieldBuildingCondition, value.BuildingConditions},
	}

	return NewStage("encode_categoricals", func(ctx context.Context, f Frame) (Frame, error) {
		for _, o := range ordinals {
			if !f.HasColumn(o.column) {
				return Frame{}, domain.MissingField(o.column)
			}
		}

		if !f.HasColumn(entity.FieldPostCode) {
			return Frame{}, domain.MissingField(entity.FieldPostCode)
		}

		for _, r := range f.Rows {
			for _, o := range ordinals {
				code, err := enc.Ordinal(ctx, o.table, r[o.column])
				if err != nil {
					return Frame{}, fmt.Errorf("cleaning.EncodeCategoricals: %w", err)
				}

				r[o.column] = code
			}

			price, err := enc.PostalPrice(ctx, entity.FieldPostCode, r[entity.FieldPostCode])
			if err != nil {
				return Frame{}, fmt.Errorf("cleaning.EncodeCategoricals: %w", err)
			}

			r[entity.FieldPostCode] = price
		}

		return f, nil
	})
}

// BoolToInt turns every boolean cell into 0 or 1.
func BoolToInt() Stage {
	return NewStage("bool_to_int", func(_ context.Context, f Frame) (Frame, error) {
		for _, r := range f.Rows {
			for c, v := range r {
				if b, ok := v.(bool); ok {
					r[c] = boolToInt(b)
				}
			}
		}

		return f, nil
	})
}

// ToInt truncates every cell of every column to an int.
func ToInt() Stage {
	return NewStage("to_int", func(_ context.Context, f Frame) (Frame, error) {
		for _, r := range f.Rows {
			for _, c := range f.Columns {
				n, err := toInt(c, r[c])
				if err != nil {
					return Frame{}, err
				}

				r[c] = n
			}
		}

		return f, nil
	})
}

func fill(f Frame, columns []string, with func(column string) any) {
	for _, r := range f.Rows {
		for _, c := range columns {
			if isMissing(r, c) {
				r[c] = with(c)
			}
		}
	}
}

func median(f Frame, column string) (float64, error) {
	values := make([]float64, 0, f.Len())

	for _, r := range f.Rows {
		if isMissing(r, column) {
			continue
		}

		v, err := cast.ToFloat64E(r[column])
		if err != nil {
			return 0, domain.InvalidValue(column, r[column], err)
		}

		values = append(values, v)
	}

	if len(values) == 0 {
		return 0, domain.MissingField(column)
	}

	slices.Sort(values)

	mid := len(values) / 2 //nolint:mnd // half
	if len(values)%2 == 1 {
		return values[mid], nil
	}

	return (values[mid-1] + values[mid]) / 2, nil //nolint:mnd // mean of the middle pair
}

func mode(f Frame, column string) (any, bool) {
	counts := make(map[any]int)

	for _, r := range f.Rows {
		if !isMissing(r, column) {
			counts[r[column]]++
		}
	}

	if len(counts) == 0 {
		return nil, false
	}

	candidates := make([]any, 0, len(counts))
	for v := range counts {
		candidates = append(candidates, v)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}

		return compareCells(a, b) < 0
	})

	return candidates[0], true
}

func compareCells(a, b any) int {
	fa, errA := cast.ToFloat64E(a)
	fb, errB := cast.ToFloat64E(b)

	_, aString := a.(string)
	_, bString := b.(string)

	if errA == nil && errB == nil && !aString && !bString {
		return cmp.Compare(fa, fb)
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toInt(column string, v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, domain.MissingField(column)
	case bool:
		return boolToInt(t), nil
	case int:
		return t, nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToIntE(t) //nolint:wrapcheck // cast never fails on integers
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(t))
		if err != nil {
			return 0, domain.InvalidValue(column, v, err)
		}

		return truncate(column, f)
	default:
		f, err := cast.ToFloat64E(t)
		if err != nil {
			return 0, domain.InvalidValue(column, v, err)
		}

		return truncate(column, f)
	}
}

func truncate(column string, f float64) (int, error) {
	if math.IsNaN(f) {
		return 0, domain.MissingField(column)
	}

	// int64 bounds; 2^63 itself is exactly representable and already overflows.
	if math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, domain.InvalidValue(column, f, nil)
	}

	return int(f), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
