package silver

// Region is one of the five Brazilian macro-regions.
type Region string

const (
	RegionSudeste     Region = "SUDESTE"
	RegionSul         Region = "SUL"
	RegionNordeste    Region = "NORDESTE"
	RegionCentroOeste Region = "CENTRO_OESTE"
	RegionNorte       Region = "NORTE"
)

func (r Region) String() string {
	return string(r)
}

var stateRegions = map[string]Region{
	"SP": RegionSudeste,
	"RJ": RegionSudeste,
	"MG": RegionSudeste,
	"ES": RegionSudeste,
	"RS": RegionSul,
	"SC": RegionSul,
	"PR": RegionSul,
	"BA": RegionNordeste,
	"SE": RegionNordeste,
	"AL": RegionNordeste,
	"PE": RegionNordeste,
	"CE": RegionNordeste,
	"PB": RegionNordeste,
	"RN": RegionNordeste,
	"MA": RegionNordeste,
	"PI": RegionNordeste,
	"GO": RegionCentroOeste,
	"DF": RegionCentroOeste,
	"MT": RegionCentroOeste,
	"MS": RegionCentroOeste,
}

// ClassifyRegion maps a two-letter state code to its macro-region. The
// function is total: any code outside the four mapped partitions falls
// through to NORTE. Blank or unknown states are expected to be rejected by
// the customer sanitizer before reaching this point.
func ClassifyRegion(state string) Region {
	if region, ok := stateRegions[state]; ok {
		return region
	}

	return RegionNorte
}
