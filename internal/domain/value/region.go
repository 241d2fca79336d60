package value

type Region string

const (
	RegionFlanders Region = "FLANDERS"
	RegionWallonia Region = "WALLONIA"
	RegionBrussels Region = "BRUSSELS"
)

// Regions in lookup order; the first one is the fallback region.
//
//nolint:gochecknoglobals
var Regions = []Region{RegionFlanders, RegionWallonia, RegionBrussels}

//nolint:gochecknoglobals
var provinceRegions = map[string]Region{
	"ANTWERP":         RegionFlanders,
	"EAST FLANDERS":   RegionFlanders,
	"WEST FLANDERS":   RegionFlanders,
	"FLEMISH BRABANT": RegionFlanders,
	"LIMBURG":         RegionFlanders,
	"BRABANT WALLON":  RegionWallonia,
	"HAINAUT":         RegionWallonia,
	"LIEGE":           RegionWallonia,
	"LUXEMBOURG":      RegionWallonia,
	"NAMUR":           RegionWallonia,
	"BRUSSELS":        RegionBrussels,
}

// Provinces lists the provinces in the order they are offered to users.
//
//nolint:gochecknoglobals
var Provinces = []string{
	"BRUSSELS", "NAMUR", "LIEGE", "HAINAUT", "BRABANT WALLON", "LUXEMBOURG",
	"ANTWERP", "WEST FLANDERS", "EAST FLANDERS", "FLEMISH BRABANT", "LIMBURG",
}

func RegionOf(province string) (Region, bool) {
	r, ok := provinceRegions[province]
	return r, ok
}
