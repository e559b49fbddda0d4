package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plantsNamed(names ...string) []PlantRecord {
	out := make([]PlantRecord, len(names))
	for i, n := range names {
		out[i] = PlantRecord{CommonName: n, ScientificName: n}
	}
	return out
}

func TestCompanionGroupsSeeded(t *testing.T) {
	plants := plantsNamed("Coast Live Oak", "Toyon", "Coffeeberry", "Western Sword Fern")

	groups := companionGroupsFor(plants)
	require.Len(t, groups, 1)
	assert.Equal(t, "Oak Woodland Understory", groups[0].Name)
	assert.Equal(t, []string{"Coast Live Oak", "Toyon", "Coffeeberry", "Western Sword Fern"}, groups[0].Plants)
	assert.NotEmpty(t, groups[0].EcologicalBenefits)
}

func TestCompanionGroupsNoDoubleClaim(t *testing.T) {
	// Toyon is a companion of both Coast Live Oak and Chamise; whichever seed
	// comes first in input order claims it.
	plants := plantsNamed(
		"Coast Live Oak", "Toyon", "Coffeeberry", "Western Sword Fern",
		"Chamise", "Common Manzanita", "Coyote Brush",
	)

	groups := companionGroupsFor(plants)
	seen := make(map[string]int)
	for _, g := range groups {
		for _, p := range g.Plants {
			seen[p]++
		}
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "%s appears in %d groups", name, count)
	}
}

func TestCompanionGroupsSeedNeedsTwoCompanions(t *testing.T) {
	// Only one of Coast Live Oak's companions is present, so no seeded group
	// forms; with just two plants the catch-all cannot form either.
	plants := plantsNamed("Coast Live Oak", "Toyon")
	assert.Empty(t, companionGroupsFor(plants))
}

func TestCompanionGroupsCap(t *testing.T) {
	plants := plantsNamed(
		"Coast Live Oak", "California Buckeye", "Toyon", "Coffeeberry",
		"Yerba Buena", "Woodland Strawberry", "Douglas Iris", "Wild Ginger",
		"Chamise", "Common Manzanita", "Blueblossom",
		"California Poppy", "Sky Lupine", "California Fuchsia",
		"Purple Needlegrass", "California Fescue", "Blue Wildrye", "Deer Grass",
	)

	groups := companionGroupsFor(plants)
	assert.LessOrEqual(t, len(groups), maxCompanionGroups)
}

func TestCompanionGroupsCatchAll(t *testing.T) {
	plants := plantsNamed("Naked Buckwheat", "Yarrow", "Coast Silktassel", "California Sagebrush", "Deer Grass")

	groups := companionGroupsFor(plants)
	require.Len(t, groups, 1)
	assert.Equal(t, "Native Garden Mix", groups[0].Name)
	assert.LessOrEqual(t, len(groups[0].Plants), catchAllGroupSize)
	assert.Equal(t, []string{"Naked Buckwheat", "Yarrow", "Coast Silktassel", "California Sagebrush"}, groups[0].Plants)
}

func TestCompanionGroupsEmptyInput(t *testing.T) {
	assert.Empty(t, companionGroupsFor(nil))
}

func TestCompanionGroupsFromRealCatalog(t *testing.T) {
	for _, region := range allRegions {
		plants := plantsForRegion(region, "")
		groups := companionGroupsFor(plants)
		assert.LessOrEqual(t, len(groups), maxCompanionGroups, "region %q", region)

		claimed := make(map[string]bool)
		for _, g := range groups {
			assert.NotEmpty(t, g.Plants)
			for _, p := range g.Plants {
				assert.False(t, claimed[p], "%s claimed twice in %q", p, region)
				claimed[p] = true
			}
		}
	}
}
