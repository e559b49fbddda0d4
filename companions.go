package main

// ============================================================================
// COMPANION GROUPING
// ============================================================================

// CompanionGroup is a "these grow well together" display grouping.
type CompanionGroup struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Plants             []string `json:"plants"`
	EcologicalBenefits []string `json:"ecologicalBenefits"`
}

const maxCompanionGroups = 4

// catchAllGroupSize caps the synthesized group when too few seeded groups form.
const catchAllGroupSize = 4

type companionEntry struct {
	name        string
	description string
	companions  []string
	benefits    []string
}

// companionTable is the static adjacency table of naturally co-occurring
// species, keyed by the seed plant's common name. Groupings follow the Marin
// Flora and Calscape community descriptions.
var companionTable = map[string]companionEntry{
	"Coast Live Oak": {
		name:        "Oak Woodland Understory",
		description: "Plants that naturally grow beneath Coast Live Oak canopies",
		companions:  []string{"California Buckeye", "Toyon", "Coffeeberry", "Western Sword Fern"},
		benefits: []string{
			"Creates layered canopy structure",
			"Supports mycorrhizal networks",
			"Provides year-round habitat for birds",
		},
	},
	"Yerba Buena": {
		name:        "Oak Woodland Groundcover",
		description: "Low-growing plants that form the forest floor community",
		companions:  []string{"Woodland Strawberry", "Douglas Iris", "Wild Ginger"},
		benefits: []string{
			"Prevents soil erosion",
			"Creates microhabitats",
			"Natural weed suppression",
		},
	},
	"Chamise": {
		name:        "Chaparral Shrub Matrix",
		description: "Drought-tolerant shrubs that form dense, fire-adapted communities",
		companions:  []string{"Common Manzanita", "Blueblossom", "Toyon", "Coyote Brush"},
		benefits: []string{
			"Fire-adapted ecosystem",
			"Deep root systems prevent erosion",
			"Natural windbreaks",
		},
	},
	"California Poppy": {
		name:        "Wildflower Meadow",
		description: "Annual and perennial wildflowers that bloom after winter rains",
		companions:  []string{"Sky Lupine", "California Fuchsia", "Sticky Monkeyflower", "Naked Buckwheat"},
		benefits: []string{
			"Supports native pollinators",
			"Seasonal color and interest",
			"Soil nitrogen fixation",
		},
	},
	"Red Alder": {
		name:        "Streamside Forest",
		description: "Moisture-loving trees and shrubs along waterways",
		companions:  []string{"Bigleaf Maple", "California Hazelnut", "Redtwig Dogwood"},
		benefits: []string{
			"Stabilizes streambanks",
			"Provides shade for aquatic life",
			"Supports riparian wildlife",
		},
	},
	"Western Sword Fern": {
		name:        "Riparian Understory",
		description: "Moisture-tolerant plants of the shaded riparian zone",
		companions:  []string{"Douglas Iris", "Redwood Sorrel", "Wild Ginger"},
		benefits: []string{
			"Groundcover prevents erosion",
			"Creates cool microclimates",
			"Natural water filtration",
		},
	},
	"Purple Needlegrass": {
		name:        "Native Grass Matrix",
		description: "Perennial grasses that form the foundation of grassland ecosystems",
		companions:  []string{"California Fescue", "Blue Wildrye", "Deer Grass"},
		benefits: []string{
			"Deep root systems prevent erosion",
			"Supports grassland birds",
			"Soil carbon sequestration",
		},
	},
	"Coyote Brush": {
		name:        "Coastal Scrub Matrix",
		description: "Salt-tolerant shrubs adapted to coastal wind and fog",
		companions:  []string{"California Sagebrush", "Coast Silktassel", "Coffeeberry", "Sticky Monkeyflower"},
		benefits: []string{
			"Salt spray tolerance",
			"Wind resistance",
			"Supports coastal wildlife",
		},
	},
}

// companionGroupsFor groups the recommended plants into co-occurrence
// communities. Processing follows input order; claimed plants never appear in
// a second group. When fewer than two seeded groups form and at least three
// plants remain unclaimed, one catch-all group is synthesized.
func companionGroupsFor(plants []PlantRecord) []CompanionGroup {
	inInput := make(map[string]bool, len(plants))
	for _, p := range plants {
		inInput[p.CommonName] = true
	}

	claimed := make(map[string]bool)
	var groups []CompanionGroup

	for _, p := range plants {
		if len(groups) >= maxCompanionGroups {
			break
		}
		if claimed[p.CommonName] {
			continue
		}
		entry, ok := companionTable[p.CommonName]
		if !ok {
			continue
		}

		var available []string
		for _, companion := range entry.companions {
			if inInput[companion] && !claimed[companion] {
				available = append(available, companion)
			}
		}
		if len(available) < 2 {
			continue
		}

		members := append([]string{p.CommonName}, available...)
		for _, m := range members {
			claimed[m] = true
		}
		groups = append(groups, CompanionGroup{
			Name:               entry.name,
			Description:        entry.description,
			Plants:             members,
			EcologicalBenefits: entry.benefits,
		})
	}

	if len(groups) < 2 {
		var remaining []string
		for _, p := range plants {
			if !claimed[p.CommonName] {
				remaining = append(remaining, p.CommonName)
			}
		}
		if len(remaining) >= 3 {
			if len(remaining) > catchAllGroupSize {
				remaining = remaining[:catchAllGroupSize]
			}
			groups = append(groups, CompanionGroup{
				Name:        "Native Garden Mix",
				Description: "Region-appropriate natives that share water and soil needs",
				Plants:      remaining,
				EcologicalBenefits: []string{
					"Shared irrigation requirements",
					"Complementary bloom seasons",
				},
			})
		}
	}

	return groups
}
