package cleaning

import (
	"math"
	"slices"

	"estate_price/internal/domain/entity"
)

// Frame is an ordered set of columns over a batch of records.
type Frame struct {
	Columns []string
	Rows    []entity.PropertyRecord
}

// NewFrame builds a frame whose columns follow the first record.
func NewFrame(rows ...entity.PropertyRecord) Frame {
	var columns []string
	if len(rows) > 0 {
		columns = rows[0].Columns()
	}

	return Frame{Columns: columns, Rows: rows}
}

func (f Frame) Len() int {
	return len(f.Rows)
}

func (f Frame) HasColumn(name string) bool {
	return slices.Contains(f.Columns, name)
}

// Record returns the single row of a one-record frame.
func (f Frame) Record() (entity.PropertyRecord, bool) {
	if len(f.Rows) != 1 {
		return nil, false
	}

	return f.Rows[0], true
}

// clone copies the frame deep enough for a stage to modify cells.
func (f Frame) clone() Frame {
	rows := make([]entity.PropertyRecord, len(f.Rows))
	for i, r := range f.Rows {
		rows[i] = r.Clone()
	}

	return Frame{Columns: slices.Clone(f.Columns), Rows: rows}
}

func (f Frame) withColumn(name string) Frame {
	if !f.HasColumn(name) {
		f.Columns = append(f.Columns, name)
	}

	return f
}

// isMissing treats absent keys, nil and NaN as missing cells.
func isMissing(r entity.PropertyRecord, column string) bool {
	if r.Missing(column) {
		return true
	}

	switch v := r[column].(type) {
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	}

	return false
}
