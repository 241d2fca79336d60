package cleaning_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"estate_price/internal/domain"
	"estate_price/internal/domain/entity"
	"estate_price/internal/domain/service/cleaning"
	"estate_price/internal/domain/service/encoding"
	"estate_price/internal/domain/value"
	"estate_price/pkg/tests"
)

//nolint:gochecknoglobals
var cleanedColumns = []string{
	"habitableSurface", "toiletCount", "postCode", "bedroomCount", "subtype", "kitchenType",
	"buildingCondition", "landSurface", "hasOffice", "hasSwimmingPool", "epc_kwh", "facedeCount",
	"parkingCountOutdoor", "hasFireplace", "terraceSurface", "hasPhotovoltaicPanels",
	"hasDressingRoom", "hasHeatPump", "hasThermicPanels", "buildingConstructionYear",
}

func newEncoder() *encoding.Encoder {
	return encoding.NewEncoder(value.NewPostalPrices(map[string]float64{"1000": 512000.7}))
}

func TestSingleRecord(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	input := entity.NewPropertyRecord(map[string]any{
		entity.FieldSubtype:           "HOUSE",
		entity.FieldBedroomCount:      3,
		entity.FieldProvince:          "BRUSSELS",
		entity.FieldPostCode:          "1000",
		entity.FieldHabitableSurface:  120.6,
		entity.FieldBuildingCondition: "GOOD",
		entity.FieldKitchenType:       "INSTALLED",
		entity.FieldEPCScore:          "B",
		entity.FieldHasOffice:         true,
		entity.FieldTerraceSurface:    nil,
	})
	snapshot := input.Clone()

	out, err := cleaning.SingleRecord(newEncoder()).RunRecord(context.Background(), input)
	rq.NoError(err)
	rq.Equal(snapshot, input)

	rq.Len(out, len(cleanedColumns))

	for _, c := range cleanedColumns {
		rq.Contains(out, c)
		rq.IsType(0, out[c], c)
	}

	rq.Equal(4, out[entity.FieldSubtype])
	rq.Equal(4, out[entity.FieldKitchenType])
	rq.Equal(3, out[entity.FieldBuildingCondition])
	rq.Equal(512000, out[entity.FieldPostCode])
	rq.Equal(120, out[entity.FieldHabitableSurface])
	rq.Equal(71, out[entity.FieldEPCKwh])
	rq.Equal(1, out[entity.FieldHasOffice])
	rq.Equal(0, out[entity.FieldTerraceSurface])
}

func TestSingleRecord_PartialInputs(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	random := tests.NewRandomizer()
	pipeline := cleaning.SingleRecord(newEncoder())
	optional := append(append([]string{}, cleaning.FlagColumns...), cleaning.AbsentMeansZeroColumns...)

	for range 50 {
		overrides := map[string]any{}
		for _, c := range random.Subset(optional) {
			overrides[c] = nil
		}

		out, err := pipeline.RunRecord(context.Background(), entity.NewPropertyRecord(overrides))
		rq.NoError(err)
		rq.Len(out, len(cleanedColumns))
	}
}

func TestSingleRecord_StrictEncoder(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	_, err := cleaning.SingleRecord(newEncoder().WithStrict(true)).
		RunRecord(context.Background(), entity.DefaultPropertyRecord())
	rq.ErrorIs(err, domain.ErrUnknownCategory)
}

func TestIntStagesAreIdempotent(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	random := tests.NewRandomizer()
	columns := []string{"a", "b", "c", "d"}
	rows := make([]entity.PropertyRecord, 20)

	for i := range rows {
		rows[i] = entity.PropertyRecord{
			"a": random.Bool(),
			"b": random.Float64() * 1000,
			"c": random.Intn(500),
			"d": -random.Float64() * 10,
		}
	}

	f := cleaning.Frame{Columns: columns, Rows: rows}
	p := cleaning.NewPipeline(cleaning.BoolToInt(), cleaning.ToInt())

	once, err := p.Run(context.Background(), f)
	rq.NoError(err)

	twice, err := p.Run(context.Background(), once)
	rq.NoError(err)
	rq.Equal(once, twice)
}

func TestToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		want    int
		wantErr error
	}{
		{name: "float truncated", value: 3.9, want: 3},
		{name: "negative float truncated", value: -3.9, want: -3},
		{name: "int kept", value: 42, want: 42},
		{name: "int64", value: int64(7), want: 7},
		{name: "true", value: true, want: 1},
		{name: "numeric string", value: "12.7", want: 12},
		{name: "nil", value: nil, wantErr: domain.ErrMissingField},
		{name: "nan", value: math.NaN(), wantErr: domain.ErrMissingField},
		{name: "inf", value: math.Inf(1), wantErr: domain.ErrInvalidValue},
		{name: "above int64", value: 1e300, wantErr: domain.ErrInvalidValue},
		{name: "below int64", value: -1e19, wantErr: domain.ErrInvalidValue},
		{name: "huge numeric string", value: "9.3e18", wantErr: domain.ErrInvalidValue},
		{name: "near int64 bound", value: 9.2e18, want: 9200000000000000000},
		{name: "text", value: "GOOD", wantErr: domain.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			f := cleaning.Frame{Columns: []string{"x"}, Rows: []entity.PropertyRecord{{"x": tt.value}}}

			out, err := cleaning.ToInt().Transform(context.Background(), f)
			if tt.wantErr != nil {
				rq.ErrorIs(err, tt.wantErr)
				return
			}

			rq.NoError(err)
			rq.Equal(tt.want, out.Rows[0]["x"])
		})
	}
}

func TestDropColumns(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	f := cleaning.Frame{
		Columns: []string{"a", "b", "c"},
		Rows:    []entity.PropertyRecord{{"a": 1, "b": 2, "c": 3}},
	}

	out, err := cleaning.DropColumns("b").Transform(context.Background(), f)
	rq.NoError(err)
	rq.Equal([]string{"a", "c"}, out.Columns)
	rq.Equal(entity.PropertyRecord{"a": 1, "c": 3}, out.Rows[0])
	rq.Equal([]string{"a", "b", "c"}, f.Columns)
	rq.Contains(f.Rows[0], "b")

	_, err = cleaning.DropColumns("missing").Transform(context.Background(), f)
	rq.ErrorIs(err, domain.ErrMissingField)
}

func TestDropNAAndDuplicates(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	f := cleaning.Frame{
		Columns: []string{"id", "price"},
		Rows: []entity.PropertyRecord{
			{"id": "1", "price": 100.0},
			{"id": "1", "price": 150.0},
			{"id": "2", "price": nil},
			{"id": "3", "price": math.NaN()},
			{"id": "4", "price": 300.0},
		},
	}

	p := cleaning.NewPipeline(cleaning.DropDuplicates("id"), cleaning.DropNA("price"))

	out, err := p.Run(context.Background(), f)
	rq.NoError(err)
	rq.Equal(2, out.Len())
	rq.Equal("1", out.Rows[0]["id"])
	rq.InDelta(100.0, out.Rows[0]["price"], 0)
	rq.Equal("4", out.Rows[1]["id"])
	rq.Equal(5, f.Len())
}

func TestFillMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []any
		want   int
	}{
		{name: "odd", values: []any{1.0, nil, 3.0, 2.0}, want: 2},
		{name: "even truncated", values: []any{1.0, 2.0, 3.0, 4.0, nil}, want: 2},
		{name: "mixed types", values: []any{10, 20.0, nil, "30"}, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			f := cleaning.Frame{Columns: []string{"x"}}
			for _, v := range tt.values {
				f.Rows = append(f.Rows, entity.PropertyRecord{"x": v})
			}

			out, err := cleaning.FillMedian("x").Transform(context.Background(), f)
			rq.NoError(err)

			for i, v := range tt.values {
				if v == nil {
					rq.Equal(tt.want, out.Rows[i]["x"])
				} else {
					rq.Equal(v, out.Rows[i]["x"])
				}
			}
		})
	}
}

func TestFillMedian_NoValues(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	f := cleaning.Frame{Columns: []string{"x"}, Rows: []entity.PropertyRecord{{"x": nil}}}

	_, err := cleaning.FillMedian("x").Transform(context.Background(), f)
	rq.ErrorIs(err, domain.ErrMissingField)
}

func TestFillMode(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	f := cleaning.Frame{
		Columns: []string{"kitchenType"},
		Rows: []entity.PropertyRecord{
			{"kitchenType": "SEMI_EQUIPPED"},
			{"kitchenType": "INSTALLED"},
			{"kitchenType": nil},
			{"kitchenType": "SEMI_EQUIPPED"},
			{"kitchenType": "INSTALLED"},
		},
	}

	out, err := cleaning.FillMode("kitchenType").Transform(context.Background(), f)
	rq.NoError(err)
	rq.Equal("INSTALLED", out.Rows[2]["kitchenType"])
	rq.Nil(f.Rows[2]["kitchenType"])
}

func TestDataset(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	listing := func(id string, overrides map[string]any) entity.PropertyRecord {
		r := entity.NewPropertyRecord(overrides)
		r[entity.FieldID] = id
		r[entity.FieldPrice] = 250000.0

		return r
	}

	rows := []entity.PropertyRecord{
		listing("1", map[string]any{entity.FieldBedroomCount: 2.0, entity.FieldEPCScore: "C", entity.FieldProvince: "LIEGE"}),
		listing("1", map[string]any{entity.FieldBedroomCount: 9.0}),
		listing("2", map[string]any{entity.FieldBedroomCount: nil, entity.FieldEPCScore: nil}),
		listing("3", map[string]any{entity.FieldBedroomCount: 4.0, entity.FieldEPCScore: "B", entity.FieldProvince: "LIEGE"}),
		listing("4", map[string]any{entity.FieldBedroomCount: 3.0}),
	}
	rows[4][entity.FieldPrice] = nil

	out, err := cleaning.Dataset(newEncoder()).Run(context.Background(), cleaning.NewFrame(rows...))
	rq.NoError(err)
	rq.Equal(3, out.Len())
	rq.Contains(out.Columns, entity.FieldPrice)
	rq.NotContains(out.Columns, entity.FieldEPCScore)
	rq.Equal(3, out.Rows[1][entity.FieldBedroomCount])
	rq.Equal(170, out.Rows[1][entity.FieldEPCKwh])
	rq.Equal(250000, out.Rows[0][entity.FieldPrice])
}

func TestPipeline_ThenDoesNotModifyReceiver(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	base := cleaning.NewPipeline(cleaning.BoolToInt())
	extended := base.Then(cleaning.ToInt())

	rq.Equal([]string{"bool_to_int"}, base.Names())
	rq.Equal([]string{"bool_to_int", "to_int"}, extended.Names())
}
