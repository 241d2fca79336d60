package value

//nolint:gochecknoglobals
var (
	// Subtypes ranks house subtypes; other subtypes (apartments included)
	// are not part of the table.
	Subtypes = newOrdinal("subtype",
		"CHALET",
		"OTHER_PROPERTY",
		"BUNGALOW",
		"TOWN_HOUSE",
		"HOUSE",
		"COUNTRY_COTTAGE",
		"MIXED_USE_BUILDING",
		"APARTMENT_BLOCK",
		"MANOR_HOUSE",
		"FARMHOUSE",
		"CASTLE",
		"MANSION",
		"VILLA",
		"EXCEPTIONAL_PROPERTY",
	)

	BuildingConditions = newOrdinal("buildingCondition",
		"TO_RESTORE",
		"TO_RENOVATE",
		"TO_BE_DONE_UP",
		"GOOD",
		"JUST_RENOVATED",
		"AS_NEW",
	)

	KitchenTypes = newOrdinal("kitchenType",
		"NOT_INSTALLED",
		"SEMI_EQUIPPED",
		"USA_UNINSTALLED",
		"USA_SEMI_EQUIPPED",
		"INSTALLED",
		"USA_INSTALLED",
		"HYPER_EQUIPPED",
		"USA_HYPER_EQUIPPED",
	)
)

// SubtypeChoices lists every subtype a listing may declare.
//
//nolint:gochecknoglobals
var SubtypeChoices = []string{
	"APARTMENT", "HOUSE", "FLAT_STUDIO", "DUPLEX", "PENTHOUSE",
	"APARTMENT_GROUP", "GROUND_FLOOR", "APARTMENT_BLOCK", "MANSION",
	"EXCEPTIONAL_PROPERTY", "MIXED_USE_BUILDING", "TRIPLEX", "LOFT",
	"VILLA", "TOWN_HOUSE", "CHALET", "HOUSE_GROUP", "MANOR_HOUSE",
	"SERVICE_FLAT", "KOT", "FARMHOUSE", "BUNGALOW", "COUNTRY_COTTAGE",
	"OTHER_PROPERTY", "CASTLE", "PAVILION",
}
