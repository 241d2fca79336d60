package value

// EPCLabels are the energy performance labels, best first.
//
//nolint:gochecknoglobals
var EPCLabels = []string{"A++", "A+", "A", "B", "C", "D", "E", "F", "G"}

// Representative primary energy use (kWh/m² per year) for each label: the
// middle of the regional band, with open-ended bands capped one band width
// past their bound.
//
//nolint:gochecknoglobals
var epcKwh = map[Region]map[string]float64{
	RegionFlanders: {
		"A++": 0, "A+": 0, "A": 50, "B": 150, "C": 250,
		"D": 350, "E": 450, "F": 550, "G": 650,
	},
	RegionWallonia: {
		"A++": 0, "A+": 23, "A": 65, "B": 128, "C": 213,
		"D": 298, "E": 383, "F": 468, "G": 553,
	},
	RegionBrussels: {
		"A++": 0, "A+": 0, "A": 23, "B": 71, "C": 123,
		"D": 181, "E": 243, "F": 310, "G": 380,
	},
}

// EPCKwh returns the estimate for label in region.
func EPCKwh(region Region, label string) (float64, bool) {
	kwh, ok := epcKwh[region][label]
	return kwh, ok
}

// EPCChoices are the labels offered to users.
//
//nolint:gochecknoglobals
var EPCChoices = []string{"A+", "A", "B", "C", "D", "E", "F", "G"}
