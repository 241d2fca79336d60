package dataset_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"estate_price/internal/domain/entity"
	"estate_price/internal/domain/service/cleaning"
	"estate_price/internal/infrastructure/dataset"
)

func TestRead(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	frame, err := dataset.Read(context.Background(), "testdata/listings.csv")
	rq.NoError(err)
	rq.Equal(3, frame.Len())
	rq.Equal(entity.FieldIndex, frame.Columns[0])
	rq.Equal(entity.FieldPrice, frame.Columns[len(frame.Columns)-1])

	first := frame.Rows[0]
	rq.Equal("HOUSE", first[entity.FieldSubtype])
	rq.InDelta(1000.0, first[entity.FieldPostCode], 0)
	rq.Equal(true, first[entity.FieldHasOffice])

	second := frame.Rows[1]
	rq.Equal("Liège", second[entity.FieldProvince])
	rq.Nil(second[entity.FieldHabitableSurface])
	rq.Equal(false, second[entity.FieldHasOffice])
	rq.Nil(second[entity.FieldEPCScore])

	third := frame.Rows[2]
	rq.Nil(third[entity.FieldHabitableSurface])
	rq.Nil(third[entity.FieldHasOffice])
	rq.Equal("A+", third[entity.FieldEPCScore])
}

func TestParseCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want any
	}{
		{"", nil},
		{"NaN", nil},
		{" nan ", nil},
		{"True", true},
		{"False", false},
		{"12", 12.0},
		{"-3.5", -3.5},
		{"GOOD", "GOOD"},
		{"A++", "A++"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, dataset.ParseCell(tt.raw))
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	frame := cleaning.Frame{
		Columns: []string{"a", "b", "c", "d"},
		Rows: []entity.PropertyRecord{
			{"a": 1, "b": 2.5, "c": true, "d": nil},
			{"a": "x", "b": 3.0, "c": false},
		},
	}

	var buf bytes.Buffer

	rq.NoError(dataset.Encode(&buf, frame))
	rq.Equal("a,b,c,d\n1,2.5,True,\nx,3,False,\n", buf.String())
}

func TestEncode_UnsupportedCell(t *testing.T) {
	t.Parallel()

	frame := cleaning.Frame{
		Columns: []string{"a"},
		Rows:    []entity.PropertyRecord{{"a": []int{1}}},
	}

	err := dataset.Encode(&bytes.Buffer{}, frame)
	require.ErrorContains(t, err, "column a")
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	_, err := dataset.Decode(strings.NewReader(""))
	require.ErrorIs(t, err, dataset.ErrEmptyHeader)
}

func TestWriteRead_Compressed(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"clean.csv", "clean.csv.gz", "clean.csv.zst"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			ctx := context.Background()

			frame, err := dataset.Read(ctx, "testdata/listings.csv")
			rq.NoError(err)

			path := filepath.Join(t.TempDir(), name)
			rq.NoError(dataset.Write(ctx, path, frame))

			got, err := dataset.Read(ctx, path)
			rq.NoError(err)
			rq.Equal(frame, got)
		})
	}
}
