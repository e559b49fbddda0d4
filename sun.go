package main

import (
	"math"
	"strings"
	"time"
)

// ============================================================================
// SUN EXPOSURE ESTIMATOR
// ============================================================================

// SunLevel is the discrete exposure classification.
type SunLevel string

const (
	SunFull    SunLevel = "full-sun"
	SunPartial SunLevel = "partial-sun"
	SunShade   SunLevel = "shade"
)

// SunExposure is the estimator output.
type SunExposure struct {
	Hours  float64  `json:"hours"`
	Level  SunLevel `json:"level"`
	Reason string   `json:"reason"`
}

const (
	minSunHours     = 3.0
	maxSunHours     = 10.0
	defaultSunHours = 6.0
)

type sunZone struct {
	city      string
	baseHours float64
	reason    string
}

// marinSunZones encodes per-town microclimate baselines: redwood canopy and
// fog pull towns down, open valleys and hillsides push them up.
var marinSunZones = []sunZone{
	{"mill valley", 5, "Redwood canopy and valley fog"},
	{"tiburon", 7, "Hillside exposure with bay influence"},
	{"belvedere", 7, "Elevated peninsula location"},
	{"sausalito", 6, "Bay influence and hillside"},
	{"san rafael", 6, "Valley location with mixed terrain"},
	{"novato", 7, "Open valley with less fog"},
	{"fairfax", 5, "Redwood forest and valley fog"},
	{"corte madera", 6, "Mixed terrain and bay influence"},
	{"larkspur", 5, "Redwood influence and valley"},
	{"greenbrae", 6, "Hillside location with bay views"},
	{"stinson beach", 5, "Coastal fog and marine layer"},
	{"bolinas", 5, "Coastal fog and marine influence"},
	{"point reyes", 6, "Coastal exposure with wind"},
	{"inverness", 5, "Coastal fog and forest"},
	{"muir beach", 5, "Coastal fog and marine layer"},
	{"ross", 6, "Valley location with hillside influence"},
	{"kentfield", 6, "Valley location with mixed terrain"},
	{"san anselmo", 6, "Valley location with hillside influence"},
}

type sunAdjustment struct {
	keyword string
	delta   float64
	reason  string
}

// sunAdjustmentCategories groups the address keywords into independent
// categories. Within a category the first match wins; adjustments stack
// across categories.
var sunAdjustmentCategories = [][]sunAdjustment{
	// Slope aspect
	{
		{"north", -1, "North-facing slope"},
		{"south", 1, "South-facing slope"},
	},
	// Terrain
	{
		{"canyon", -0.5, "Canyon location"},
		{"valley", -0.5, "Valley location"},
		{"ridge", 1, "Ridge location"},
		{"heights", 0.5, "Elevated location"},
		{"hill", 0.5, "Hillside location"},
	},
	// Marine influence
	{
		{"beach", -0.5, "Coastal influence"},
		{"coast", -0.5, "Coastal influence"},
		{"bay", -0.5, "Bay influence"},
	},
	// Tree cover
	{
		{"redwood", -1, "Redwood forest"},
		{"forest", -1, "Forest area"},
		{"oak", 0, "Oak woodland"},
	},
	// Openness
	{
		{"meadow", 0.5, "Open meadow"},
		{"field", 0.5, "Open field"},
	},
}

// monthSunAdjustments accounts for the Marin fog cycle: winter months lose
// effective sun, the May-August clear season gains it. Index by month number.
var monthSunAdjustments = [13]float64{
	0,    // unused
	-0.5, // January
	-0.5, // February
	0,    // March
	0.5,  // April
	1,    // May
	1.5,  // June
	1.5,  // July
	1,    // August
	0.5,  // September
	0,    // October
	-0.5, // November
	-0.5, // December
}

// estimateSunExposure combines a city baseline, address keyword adjustments
// and a seasonal adjustment into an hours-of-sun estimate. Deterministic for
// a given address and month.
func estimateSunExposure(address string, month time.Month) SunExposure {
	lowered := strings.ToLower(address)

	baseHours := defaultSunHours
	reasons := []string{"Marin County average"}
	for _, zone := range marinSunZones {
		if strings.Contains(lowered, zone.city) {
			baseHours = zone.baseHours
			reasons = []string{zone.reason}
			break
		}
	}

	total := baseHours
	for _, category := range sunAdjustmentCategories {
		for _, adj := range category {
			if strings.Contains(lowered, adj.keyword) {
				total += adj.delta
				reasons = append(reasons, adj.reason)
				break
			}
		}
	}

	seasonal := 0.0
	if month >= time.January && month <= time.December {
		seasonal = monthSunAdjustments[int(month)]
	}
	total += seasonal
	if seasonal > 0 {
		reasons = append(reasons, "Marin County clear season")
	} else if seasonal < 0 {
		reasons = append(reasons, "Marin County fog season")
	}

	total = math.Max(minSunHours, math.Min(maxSunHours, total))

	var level SunLevel
	switch {
	case total >= 7:
		level = SunFull
	case total >= 5:
		level = SunPartial
	default:
		level = SunShade
	}

	return SunExposure{
		Hours:  math.Round(total*10) / 10,
		Level:  level,
		Reason: strings.Join(reasons, ", "),
	}
}
