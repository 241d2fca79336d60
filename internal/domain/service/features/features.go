package features

import (
	"fmt"
	"math"
	"slices"

	"github.com/spf13/cast"

	"estate_price/internal/domain"
	"estate_price/internal/domain/entity"
)

// Order is the feature layout the model was trained on.
//
//nolint:gochecknoglobals
var Order = []string{
	entity.FieldHabitableSurface,
	entity.FieldToiletCount,
	entity.FieldPostCode,
	entity.FieldBedroomCount,
	entity.FieldSubtype,
	entity.FieldKitchenType,
	entity.FieldBuildingCondition,
	entity.FieldLandSurface,
	entity.FieldHasOffice,
	entity.FieldHasSwimmingPool,
	entity.FieldEPCKwh,
	entity.FieldFacadeCount,
	entity.FieldParkingCountOutdoor,
	entity.FieldHasFireplace,
	entity.FieldTerraceSurface,
	entity.FieldHasPhotovoltaicPanels,
	entity.FieldHasDressingRoom,
	entity.FieldHasHeatPump,
	entity.FieldHasThermicPanels,
	entity.FieldBuildingConstructionYear,
}

// Assembler lays out a cleaned record as a feature vector. By default a
// missing feature is 0; a strict assembler rejects the record instead.
type Assembler struct {
	names  []string
	strict bool
}

func NewAssembler() *Assembler {
	return &Assembler{names: slices.Clone(Order)}
}

func (a *Assembler) WithStrict(strict bool) *Assembler {
	a.strict = strict
	return a
}

func (a *Assembler) Names() []string {
	return slices.Clone(a.names)
}

func (a *Assembler) Assemble(record entity.PropertyRecord) (entity.FeatureVector, error) {
	vector := make(entity.FeatureVector, len(a.names))

	for i, name := range a.names {
		raw, ok := record[name]
		if !ok || raw == nil {
			if a.strict {
				return nil, domain.MissingField(name)
			}

			continue
		}

		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, domain.InvalidValue(name, raw, err)
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, domain.InvalidValue(name, raw, nil)
		}

		vector[i] = v
	}

	return vector, nil
}

// Validate checks that names lists exactly the assembler's features, in order.
func (a *Assembler) Validate(names []string) error {
	if slices.Equal(names, a.names) {
		return nil
	}

	return fmt.Errorf("features.Validate: model expects %v, assembler produces %v", names, a.names)
}
