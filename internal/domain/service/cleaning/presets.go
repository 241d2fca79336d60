package cleaning

import "estate_price/internal/domain/entity"

// Columns with no predictive value or too sparse to be used.
//
//nolint:gochecknoglobals
var IrrelevantColumns = []string{
	entity.FieldIndex,
	entity.FieldID,
	entity.FieldURL,
	entity.FieldLocality,
	entity.FieldType,
	entity.FieldMonthlyCost,
	entity.FieldHasBalcony,
	entity.FieldAccessibleDisabledPeople,
	entity.FieldKitchenSurface,
	entity.FieldHasTerrace,
	entity.FieldHasGarden,
	entity.FieldGardenOrientation,
	entity.FieldRoomCount,
	entity.FieldStreetFacadeWidth,
	entity.FieldFloorCount,
	entity.FieldFloodZoneType,
	entity.FieldTerraceOrientation,
	entity.FieldHasAttic,
	entity.FieldHasBasement,
	entity.FieldDiningRoomSurface,
	entity.FieldHasDiningRoom,
	entity.FieldHasLift,
	entity.FieldHeatingType,
	entity.FieldHasLivingRoom,
	entity.FieldLivingRoomSurface,
	entity.FieldGardenSurface,
	entity.FieldParkingCountIndoor,
	entity.FieldHasAirConditioning,
	entity.FieldHasArmoredDoor,
	entity.FieldHasVisiophone,
	entity.FieldBathroomCount,
}

// A missing flag means the property does not have the feature.
//
//nolint:gochecknoglobals
var FlagColumns = []string{
	entity.FieldHasOffice,
	entity.FieldHasPhotovoltaicPanels,
	entity.FieldHasHeatPump,
	entity.FieldHasThermicPanels,
	entity.FieldHasFireplace,
	entity.FieldHasDressingRoom,
	entity.FieldHasSwimmingPool,
}

// A missing surface or count here means there is none.
//
//nolint:gochecknoglobals
var AbsentMeansZeroColumns = []string{
	entity.FieldTerraceSurface,
	entity.FieldParkingCountOutdoor,
	entity.FieldLandSurface,
}

//nolint:gochecknoglobals
var MedianColumns = []string{
	entity.FieldFacadeCount,
	entity.FieldBuildingConstructionYear,
	entity.FieldBedroomCount,
	entity.FieldHabitableSurface,
	entity.FieldEPCKwh,
}

//nolint:gochecknoglobals
var ModeColumns = []string{
	entity.FieldBuildingCondition,
	entity.FieldSubtype,
	entity.FieldKitchenType,
}

// SingleRecord is the pipeline applied to one listing before scoring.
func SingleRecord(enc CategoricalEncoder) *Pipeline {
	return NewPipeline(
		DropColumns(IrrelevantColumns...),
		FillNA(false, FlagColumns...),
		FillNA(0, AbsentMeansZeroColumns...),
		ComputeEPCKwh(enc),
		DropColumns(entity.FieldEPCScore, entity.FieldProvince),
		EncodeCategoricals(enc),
		BoolToInt(),
		ToInt(),
	)
}

// Dataset prepares a batch of scraped listings. Median and mode fills are
// computed from the batch itself.
func Dataset(enc CategoricalEncoder) *Pipeline {
	return NewPipeline(
		DropDuplicates(entity.FieldID),
		DropNA(entity.FieldPrice),
		DropColumns(IrrelevantColumns...),
		FillNA(false, FlagColumns...),
		FillNA(0, AbsentMeansZeroColumns...),
		ComputeEPCKwh(enc),
		FillMedian(MedianColumns...),
		FillMode(ModeColumns...),
		DropColumns(entity.FieldEPCScore, entity.FieldProvince),
		EncodeCategoricals(enc),
		BoolToInt(),
		ToInt(),
	)
}
