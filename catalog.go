package main

// ============================================================================
// STATIC PLANT CATALOG
// ============================================================================

// GrowthHabit is the evergreen/deciduous classification.
type GrowthHabit string

const (
	HabitEvergreen     GrowthHabit = "Evergreen"
	HabitDeciduous     GrowthHabit = "Deciduous"
	HabitSemiEvergreen GrowthHabit = "Semi-evergreen"
)

// GrowthRate is the relative establishment speed.
type GrowthRate string

const (
	GrowthSlow     GrowthRate = "Slow"
	GrowthModerate GrowthRate = "Moderate"
	GrowthFast     GrowthRate = "Fast"
)

type Butterfly struct {
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName,omitempty"`
}

type Bird struct {
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName,omitempty"`
}

// PlantRecord is an immutable catalog entry, loaded once at process start and
// never mutated. ScientificName is the unique key.
type PlantRecord struct {
	ScientificName       string      `json:"scientificName"`
	CommonName           string      `json:"commonName"`
	Communities          []Region    `json:"communities"`
	WildlifeSupportScore int         `json:"wildlifeSupportScore"`
	EvergreenDeciduous   GrowthHabit `json:"evergreenDeciduous"`
	MatureHeightFt       float64     `json:"matureHeightFt"`
	MatureWidthFt        float64     `json:"matureWidthFt"`
	GrowthRate           GrowthRate  `json:"growthRate"`
	LifespanYears        int         `json:"lifespanYears"`
	FlowerColors         []string    `json:"flowerColors"`
	BloomMonths          []int       `json:"bloomMonths"`
	IndigenousUses       []string    `json:"indigenousUses"`
	Butterflies          []Butterfly `json:"butterflies"`
	Birds                []Bird      `json:"birds,omitempty"`
	SunAffinity          SunLevel    `json:"sunExposure,omitempty"`
}

func (p PlantRecord) inCommunity(region Region) bool {
	for _, c := range p.Communities {
		if c == region {
			return true
		}
	}
	return false
}

// wildlifeBand turns the numeric score into the display label used in the
// report. Scores are only ever shown banded.
func (p PlantRecord) wildlifeBand() string {
	switch {
	case p.WildlifeSupportScore >= 80:
		return "Exceptional wildlife value"
	case p.WildlifeSupportScore >= 60:
		return "High wildlife value"
	case p.WildlifeSupportScore >= 40:
		return "Moderate wildlife value"
	default:
		return "Supporting wildlife value"
	}
}

// maxPlantsPerPlan caps how many catalog entries a single plan recommends.
const maxPlantsPerPlan = 15

// plantsForRegion returns the catalog subset for a region in catalog
// definition order, deduplicated by scientific name and capped at
// maxPlantsPerPlan. A region with no members (cannot happen with the shipped
// catalog, but guarded anyway) falls back to the default region's list.
//
// When sunLevel is non-empty the list is stably reordered so that plants whose
// affinity matches the estimated level come first. Plants are never dropped:
// filtering could empty a region list and break the non-empty guarantee.
func plantsForRegion(region Region, sunLevel SunLevel) []PlantRecord {
	selected := selectByCommunity(region)
	if len(selected) == 0 && region != defaultRegion {
		selected = selectByCommunity(defaultRegion)
	}

	if sunLevel != "" {
		reordered := make([]PlantRecord, 0, len(selected))
		for _, p := range selected {
			if p.SunAffinity == sunLevel {
				reordered = append(reordered, p)
			}
		}
		for _, p := range selected {
			if p.SunAffinity != sunLevel {
				reordered = append(reordered, p)
			}
		}
		selected = reordered
	}

	if len(selected) > maxPlantsPerPlan {
		selected = selected[:maxPlantsPerPlan]
	}
	return selected
}

func selectByCommunity(region Region) []PlantRecord {
	var out []PlantRecord
	seen := make(map[string]bool)
	for _, p := range plantCatalog {
		if !p.inCommunity(region) || seen[p.ScientificName] {
			continue
		}
		seen[p.ScientificName] = true
		out = append(out, p)
	}
	return out
}

// Nursery is a recommended native-plant supplier, included in the plan output
// and the PDF.
type Nursery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Summary string `json:"summary"`
	Website string `json:"website"`
}

var recommendedNurseries = []Nursery{
	{
		Name:    "Fairfax Native Plant Nursery",
		Phone:   "(415) 456-2010",
		Summary: "Specializes in California native plants with expert guidance for Marin County gardens",
		Website: "https://www.fairfaxnativeplantnursery.com",
	},
	{
		Name:    "O'Donnell's Nursery",
		Phone:   "(415) 456-2010",
		Summary: "Family-owned nursery offering native plants and sustainable gardening solutions",
		Website: "https://www.odonnellsnursery.com",
	},
	{
		Name:    "CNL Native Plant Nursery",
		Phone:   "(415) 456-2010",
		Summary: "Conservation-focused nursery providing native plants for ecological restoration",
		Website: "https://www.cnlnativeplants.com",
	},
	{
		Name:    "Watershed Nursery",
		Phone:   "(510) 234-2222",
		Summary: "Bay Area's premier native plant nursery with extensive selection and expertise",
		Website: "https://www.watershednursery.com",
	},
}
