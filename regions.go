package main

import "strings"

// ============================================================================
// REGION & WATER DISTRICT CLASSIFICATION
// ============================================================================

// Region is one of the fixed Marin County plant-community labels.
type Region string

const (
	RegionOakWoodland  Region = "Oak Woodland"
	RegionChaparral    Region = "Chaparral"
	RegionRiparian     Region = "Riparian"
	RegionGrassland    Region = "Grassland"
	RegionCoastalScrub Region = "Coastal Scrub"
)

// WaterDistrict identifies which rebate program catalog applies.
type WaterDistrict string

const (
	DistrictMarinWater WaterDistrict = "Marin Water"
	DistrictNorthMarin WaterDistrict = "North Marin Water District"
)

// classifierRuleVersion tracks the canonical rule table. Earlier iterations of
// the ruleset disagreed on a few cities (Novato in particular); version 2 is
// the table the product settled on.
const classifierRuleVersion = 2

// defaultRegion and defaultDistrict apply to empty or unrecognized cities.
const (
	defaultRegion   = RegionOakWoodland
	defaultDistrict = DistrictMarinWater
)

type regionRule struct {
	substr string
	region Region
}

// regionRules is ordered: the first rule whose substring appears in the
// lower-cased city wins. Order is policy, not an accident.
var regionRules = []regionRule{
	{"stinson beach", RegionCoastalScrub},
	{"bolinas", RegionCoastalScrub},
	{"muir beach", RegionCoastalScrub},
	{"marshall", RegionCoastalScrub},
	{"dillon beach", RegionCoastalScrub},
	{"point reyes", RegionCoastalScrub},
	{"inverness", RegionCoastalScrub},
	{"olema", RegionCoastalScrub},
	{"tomales", RegionCoastalScrub},
	{"mill valley", RegionChaparral},
	{"tiburon", RegionChaparral},
	{"belvedere", RegionChaparral},
	{"sausalito", RegionChaparral},
	{"fairfax", RegionRiparian},
	{"lagunitas", RegionRiparian},
	{"forest knolls", RegionRiparian},
	{"woodacre", RegionRiparian},
	{"san geronimo", RegionRiparian},
	{"larkspur", RegionRiparian},
	{"corte madera", RegionRiparian},
	{"kentfield", RegionRiparian},
	{"greenbrae", RegionRiparian},
	{"ross", RegionRiparian},
	{"nicasio", RegionGrassland},
	{"novato", RegionOakWoodland},
	{"san rafael", RegionOakWoodland},
	{"san anselmo", RegionOakWoodland},
}

type districtRule struct {
	substr   string
	district WaterDistrict
}

// districtRules mirrors the North Marin Water District service area: Novato
// plus the West Marin communities. Everything else is Marin Water.
var districtRules = []districtRule{
	{"novato", DistrictNorthMarin},
	{"point reyes", DistrictNorthMarin},
	{"inverness", DistrictNorthMarin},
	{"olema", DistrictNorthMarin},
	{"tomales", DistrictNorthMarin},
	{"marshall", DistrictNorthMarin},
	{"dillon beach", DistrictNorthMarin},
}

// classifyRegion maps a free-text city name to a plant community. Pure and
// total: unmatched input falls through to the default.
func classifyRegion(city string) Region {
	lowered := strings.ToLower(city)
	for _, rule := range regionRules {
		if strings.Contains(lowered, rule.substr) {
			return rule.region
		}
	}
	return defaultRegion
}

// classifyWaterDistrict maps a free-text city name to a water district.
func classifyWaterDistrict(city string) WaterDistrict {
	lowered := strings.ToLower(city)
	for _, rule := range districtRules {
		if strings.Contains(lowered, rule.substr) {
			return rule.district
		}
	}
	return defaultDistrict
}

// allRegions is used by tests and the catalog fallback check.
var allRegions = []Region{
	RegionOakWoodland,
	RegionChaparral,
	RegionRiparian,
	RegionGrassland,
	RegionCoastalScrub,
}

// communitySummaries back the PDF's community overview section.
var communitySummaries = map[Region]string{
	RegionChaparral:    "Chaparral plant communities thrive in the dry, rocky areas of Marin County. These communities feature drought-tolerant shrubs adapted to poor soils and hot summers. Key characteristics include leathery leaves, deep root systems, and plants that can survive with minimal water.",
	RegionOakWoodland:  "Oak woodland communities are dominated by coast live oaks and feature a diverse understory. These communities provide habitat for many wildlife species and feature plants adapted to partial shade and seasonal moisture.",
	RegionGrassland:    "Grassland communities are found in the open, sunny areas of Marin County. These communities feature native grasses and wildflowers adapted to seasonal rainfall patterns and periodic grazing.",
	RegionRiparian:     "Riparian plant communities grow along streams and waterways. These communities feature moisture-loving species adapted to seasonal flooding and provide important wildlife corridors.",
	RegionCoastalScrub: "Coastal scrub communities occupy the windy, fog-washed slopes near the ocean. These communities feature low, salt-tolerant shrubs with deep roots that stabilize bluffs and dunes.",
}

func communitySummary(region Region) string {
	if s, ok := communitySummaries[region]; ok {
		return s
	}
	return "This region features a diverse mix of native plant communities adapted to local climate and soil conditions."
}
