package entity

import (
	"maps"
	"slices"
)

// Field names of a raw property listing.
const (
	FieldIndex                    = "Unnamed: 0"
	FieldID                       = "id"
	FieldURL                      = "url"
	FieldType                     = "type"
	FieldSubtype                  = "subtype"
	FieldBedroomCount             = "bedroomCount"
	FieldBathroomCount            = "bathroomCount"
	FieldProvince                 = "province"
	FieldLocality                 = "locality"
	FieldPostCode                 = "postCode"
	FieldHabitableSurface         = "habitableSurface"
	FieldRoomCount                = "roomCount"
	FieldMonthlyCost              = "monthlyCost"
	FieldHasAttic                 = "hasAttic"
	FieldHasBasement              = "hasBasement"
	FieldHasDressingRoom          = "hasDressingRoom"
	FieldDiningRoomSurface        = "diningRoomSurface"
	FieldHasDiningRoom            = "hasDiningRoom"
	FieldBuildingCondition        = "buildingCondition"
	FieldBuildingConstructionYear = "buildingConstructionYear"
	FieldFacadeCount              = "facedeCount"
	FieldFloorCount               = "floorCount"
	FieldStreetFacadeWidth        = "streetFacadeWidth"
	FieldHasLift                  = "hasLift"
	FieldFloodZoneType            = "floodZoneType"
	FieldHeatingType              = "heatingType"
	FieldHasHeatPump              = "hasHeatPump"
	FieldHasPhotovoltaicPanels    = "hasPhotovoltaicPanels"
	FieldHasThermicPanels         = "hasThermicPanels"
	FieldKitchenSurface           = "kitchenSurface"
	FieldKitchenType              = "kitchenType"
	FieldLandSurface              = "landSurface"
	FieldHasLivingRoom            = "hasLivingRoom"
	FieldLivingRoomSurface        = "livingRoomSurface"
	FieldHasBalcony               = "hasBalcony"
	FieldHasGarden                = "hasGarden"
	FieldGardenSurface            = "gardenSurface"
	FieldGardenOrientation        = "gardenOrientation"
	FieldParkingCountIndoor       = "parkingCountIndoor"
	FieldParkingCountOutdoor      = "parkingCountOutdoor"
	FieldHasAirConditioning       = "hasAirConditioning"
	FieldHasArmoredDoor           = "hasArmoredDoor"
	FieldHasVisiophone            = "hasVisiophone"
	FieldHasOffice                = "hasOffice"
	FieldToiletCount              = "toiletCount"
	FieldHasSwimmingPool          = "hasSwimmingPool"
	FieldHasFireplace             = "hasFireplace"
	FieldHasTerrace               = "hasTerrace"
	FieldTerraceSurface           = "terraceSurface"
	FieldTerraceOrientation       = "terraceOrientation"
	FieldAccessibleDisabledPeople = "accessibleDisabledPeople"
	FieldEPCScore                 = "epcScore"

	// Derived by the cleaning pipeline from epcScore and province.
	FieldEPCKwh = "epc_kwh"
	// Present in training datasets only.
	FieldPrice = "price"
)

// PropertyRecord maps attribute names to raw values: bool, integers, float64,
// string, or nil for a missing value.
type PropertyRecord map[string]any

func (r PropertyRecord) Clone() PropertyRecord {
	return maps.Clone(r)
}

// Missing reports whether the field is absent or explicitly nil.
func (r PropertyRecord) Missing(field string) bool {
	v, ok := r[field]
	return !ok || v == nil
}

type defaultField struct {
	name  string
	value any
}

//nolint:gochecknoglobals
var defaultFields = []defaultField{
	{FieldIndex, 0},
	{FieldID, "default_id"},
	{FieldURL, "default_url"},
	{FieldType, "default_type"},
	{FieldSubtype, "APARTMENT"},
	{FieldBedroomCount, 0},
	{FieldBathroomCount, 0},
	{FieldProvince, "default_province"},
	{FieldLocality, "default_locality"},
	{FieldPostCode, 0},
	{FieldHabitableSurface, 0},
	{FieldRoomCount, 0},
	{FieldMonthlyCost, 0},
	{FieldHasAttic, false},
	{FieldHasBasement, false},
	{FieldHasDressingRoom, false},
	{FieldDiningRoomSurface, 0},
	{FieldHasDiningRoom, false},
	{FieldBuildingCondition, "GOOD"},
	{FieldBuildingConstructionYear, 0},
	{FieldFacadeCount, 0},
	{FieldFloorCount, 0},
	{FieldStreetFacadeWidth, 0},
	{FieldHasLift, false},
	{FieldFloodZoneType, "default_floodZoneType"},
	{FieldHeatingType, "default_heatingType"},
	{FieldHasHeatPump, false},
	{FieldHasPhotovoltaicPanels, false},
	{FieldHasThermicPanels, false},
	{FieldKitchenSurface, 0},
	{FieldKitchenType, "NOT_INSTALLED"},
	{FieldLandSurface, 0},
	{FieldHasLivingRoom, false},
	{FieldLivingRoomSurface, 0},
	{FieldHasBalcony, false},
	{FieldHasGarden, false},
	{FieldGardenSurface, 0},
	{FieldGardenOrientation, "default_orientation"},
	{FieldParkingCountIndoor, 0},
	{FieldParkingCountOutdoor, 0},
	{FieldHasAirConditioning, false},
	{FieldHasArmoredDoor, false},
	{FieldHasVisiophone, false},
	{FieldHasOffice, false},
	{FieldToiletCount, 0},
	{FieldHasSwimmingPool, false},
	{FieldHasFireplace, false},
	{FieldHasTerrace, false},
	{FieldTerraceSurface, 0},
	{FieldTerraceOrientation, "default_orientation"},
	{FieldAccessibleDisabledPeople, false},
	{FieldEPCScore, "A"},
}

//nolint:gochecknoglobals
var defaultIndex = func() map[string]struct{} {
	idx := make(map[string]struct{}, len(defaultFields))
	for _, f := range defaultFields {
		idx[f.name] = struct{}{}
	}

	return idx
}()

// Fields returns every recognized field in template order.
func Fields() []string {
	names := make([]string, len(defaultFields))
	for i, f := range defaultFields {
		names[i] = f.name
	}

	return names
}

// DefaultPropertyRecord returns a fresh record with a default value for every
// recognized field.
func DefaultPropertyRecord() PropertyRecord {
	record := make(PropertyRecord, len(defaultFields))
	for _, f := range defaultFields {
		record[f.name] = f.value
	}

	return record
}

// NewPropertyRecord merges overrides on top of the defaults. Keys outside the
// template are kept as is; values are not type-checked here.
func NewPropertyRecord(overrides map[string]any) PropertyRecord {
	record := DefaultPropertyRecord()
	maps.Copy(record, overrides)

	return record
}

// Columns returns the template order followed by the keys of the record
// outside the template, sorted by name.
func (r PropertyRecord) Columns() []string {
	columns := Fields()

	var extras []string

	for k := range r {
		if _, known := defaultIndex[k]; !known {
			extras = append(extras, k)
		}
	}

	slices.Sort(extras)

	return append(columns, extras...)
}
