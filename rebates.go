package main

// ============================================================================
// REBATE CATALOG
// ============================================================================

// RebateOffer is a water-district conservation rebate. All fields are display
// strings; amounts are never parsed.
type RebateOffer struct {
	Title        string `json:"title"`
	Amount       string `json:"amount"`
	Requirements string `json:"requirements"`
	Link         string `json:"link"`
}

var rebateCatalog = map[WaterDistrict][]RebateOffer{
	DistrictMarinWater: {
		{
			Title:        "Turf Replacement Program",
			Amount:       "$3.00 per square foot",
			Requirements: "Replace lawn with drought-tolerant plants, minimum 250 sq ft",
			Link:         "https://www.marinwater.org/conservation/rebates/turf-replacement",
		},
		{
			Title:        "Smart Irrigation Controller",
			Amount:       "Up to $200",
			Requirements: "Install weather-based irrigation controller",
			Link:         "https://www.marinwater.org/conservation/rebates/smart-irrigation",
		},
		{
			Title:        "High-Efficiency Toilet",
			Amount:       "$100 per toilet",
			Requirements: "Replace toilet with 1.28 GPF or less model",
			Link:         "https://www.marinwater.org/conservation/rebates/toilets",
		},
	},
	DistrictNorthMarin: {
		{
			Title:        "Landscape Conversion",
			Amount:       "$2.00 per square foot",
			Requirements: "Convert lawn to water-efficient landscaping, minimum 100 sq ft",
			Link:         "https://www.nmwd.com/conservation/rebates/landscape-conversion",
		},
		{
			Title:        "Drip Irrigation System",
			Amount:       "Up to $150",
			Requirements: "Install drip irrigation for trees and shrubs",
			Link:         "https://www.nmwd.com/conservation/rebates/drip-irrigation",
		},
		{
			Title:        "Rain Barrel",
			Amount:       "Up to $75",
			Requirements: "Install rain barrel for water collection",
			Link:         "https://www.nmwd.com/conservation/rebates/rain-barrels",
		},
	},
}

// rebatesForDistrict is a pure static lookup. Unknown districts return an
// empty list, not an error.
func rebatesForDistrict(district WaterDistrict) []RebateOffer {
	return rebateCatalog[district]
}
