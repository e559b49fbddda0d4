package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRegion(t *testing.T) {
	cases := []struct {
		city string
		want Region
	}{
		{"Mill Valley", RegionChaparral},
		{"Tiburon", RegionChaparral},
		{"Sausalito", RegionChaparral},
		{"Novato", RegionOakWoodland},
		{"San Rafael", RegionOakWoodland},
		{"San Anselmo", RegionOakWoodland},
		{"Fairfax", RegionRiparian},
		{"Larkspur", RegionRiparian},
		{"Corte Madera", RegionRiparian},
		{"Ross", RegionRiparian},
		{"Nicasio", RegionGrassland},
		{"Stinson Beach", RegionCoastalScrub},
		{"Bolinas", RegionCoastalScrub},
		{"Point Reyes Station", RegionCoastalScrub},
		{"Inverness", RegionCoastalScrub},
		{"Dillon Beach", RegionCoastalScrub},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyRegion(tc.city), "city %q", tc.city)
	}
}

func TestClassifyRegionCaseInsensitive(t *testing.T) {
	assert.Equal(t, RegionChaparral, classifyRegion("MILL VALLEY"))
	assert.Equal(t, RegionChaparral, classifyRegion("mill valley"))
}

func TestClassifyRegionDefault(t *testing.T) {
	assert.Equal(t, defaultRegion, classifyRegion(""))
	assert.Equal(t, defaultRegion, classifyRegion("Petaluma"))
	assert.Equal(t, defaultRegion, classifyRegion("some unknown place"))
}

func TestClassifyWaterDistrict(t *testing.T) {
	cases := []struct {
		city string
		want WaterDistrict
	}{
		{"Novato", DistrictNorthMarin},
		{"Point Reyes Station", DistrictNorthMarin},
		{"Tomales", DistrictNorthMarin},
		{"Dillon Beach", DistrictNorthMarin},
		{"Mill Valley", DistrictMarinWater},
		{"San Rafael", DistrictMarinWater},
		{"Sausalito", DistrictMarinWater},
		{"", DistrictMarinWater},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyWaterDistrict(tc.city), "city %q", tc.city)
	}
}

func TestClassifiersArePure(t *testing.T) {
	// Same input, same answer, every time.
	for i := 0; i < 3; i++ {
		assert.Equal(t, RegionChaparral, classifyRegion("Mill Valley"))
		assert.Equal(t, DistrictNorthMarin, classifyWaterDistrict("Novato"))
	}
}

func TestCommunitySummaryCoversAllRegions(t *testing.T) {
	for _, region := range allRegions {
		assert.NotEmpty(t, communitySummary(region), "region %q", region)
	}
	assert.NotEmpty(t, communitySummary(Region("unmapped")))
}
