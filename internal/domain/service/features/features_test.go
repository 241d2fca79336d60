package features_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"estate_price/internal/domain"
	"estate_price/internal/domain/entity"
	"estate_price/internal/domain/service/features"
)

func completeRecord() entity.PropertyRecord {
	record := entity.PropertyRecord{}
	for i, name := range features.Order {
		record[name] = i + 1
	}

	return record
}

func TestAssembler_Order(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	vector, err := features.NewAssembler().Assemble(completeRecord())
	rq.NoError(err)
	rq.Len(vector, 20)

	for i, v := range vector {
		rq.InDelta(float64(i+1), v, 0)
	}
}

func TestAssembler_PermissiveMissingEqualsZero(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	asm := features.NewAssembler()

	for _, name := range features.Order {
		withoutField := completeRecord()
		delete(withoutField, name)

		withZero := completeRecord()
		withZero[name] = 0

		got, err := asm.Assemble(withoutField)
		rq.NoError(err)

		want, err := asm.Assemble(withZero)
		rq.NoError(err)
		rq.Equal(want, got, name)
	}
}

func TestAssembler_Strict(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	record := completeRecord()
	delete(record, entity.FieldEPCKwh)

	_, err := features.NewAssembler().WithStrict(true).Assemble(record)
	rq.ErrorIs(err, domain.ErrMissingField)
	rq.ErrorContains(err, entity.FieldEPCKwh)
}

func TestAssembler_IgnoresExtraFields(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	record := completeRecord()
	record[entity.FieldPrice] = 100

	vector, err := features.NewAssembler().WithStrict(true).Assemble(record)
	rq.NoError(err)
	rq.Len(vector, len(features.Order))
}

func TestAssembler_InvalidValue(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	record := completeRecord()
	record[entity.FieldSubtype] = "HOUSE"

	_, err := features.NewAssembler().Assemble(record)
	rq.ErrorIs(err, domain.ErrInvalidValue)
}

func TestAssembler_Validate(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	asm := features.NewAssembler()
	rq.NoError(asm.Validate(features.Order))
	rq.Error(asm.Validate(features.Order[1:]))

	swapped := asm.Names()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	rq.Error(asm.Validate(swapped))
}
