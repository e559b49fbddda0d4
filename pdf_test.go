package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func samplePlan(region Region, district WaterDistrict) *PlanResult {
	plants := plantsForRegion(region, "")
	recommended := make([]RecommendedPlant, len(plants))
	for i, p := range plants {
		recommended[i] = RecommendedPlant{PlantRecord: p}
	}
	return &PlanResult{
		Address:         "100 Throckmorton Ave, Mill Valley",
		Email:           "alex@example.com",
		City:            "Mill Valley",
		Region:          region,
		WaterDistrict:   district,
		SunExposure:     SunExposure{Hours: 5.5, Level: SunPartial, Reason: "Redwood canopy and valley fog"},
		Plants:          recommended,
		Rebates:         rebatesForDistrict(district),
		CompanionGroups: companionGroupsFor(plants),
		Nurseries:       recommendedNurseries,
	}
}

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewGardenPDFRenderer(zap.NewNop())
	out, err := renderer.Render(context.Background(), samplePlan(RegionChaparral, DistrictMarinWater))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderAllRegions(t *testing.T) {
	renderer := NewGardenPDFRenderer(zap.NewNop())
	for _, region := range allRegions {
		out, err := renderer.Render(context.Background(), samplePlan(region, DistrictNorthMarin))
		require.NoError(t, err, "region %q", region)
		assert.NotEmpty(t, out, "region %q", region)
	}
}

func TestRenderSkipsBrokenPhotos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	plan := samplePlan(RegionOakWoodland, DistrictMarinWater)
	plan.Plants[0].SeasonalPhotos = []SeasonalPhoto{
		{URL: srv.URL + "/photo1.jpg", Season: SeasonSpring, Timestamp: time.Now()},
	}

	renderer := NewGardenPDFRenderer(zap.NewNop())
	out, err := renderer.Render(context.Background(), plan)
	require.NoError(t, err, "unreachable photos must not fail the render")
	assert.NotEmpty(t, out)
}

func TestRenderRejectsNonImageContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not an image</html>")
	}))
	defer srv.Close()

	plan := samplePlan(RegionGrassland, DistrictMarinWater)
	plan.Plants[0].SeasonalPhotos = []SeasonalPhoto{
		{URL: srv.URL + "/photo1.jpg", Season: SeasonSummer, Timestamp: time.Now()},
	}

	renderer := NewGardenPDFRenderer(zap.NewNop())
	out, err := renderer.Render(context.Background(), plan)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPlantDetailLines(t *testing.T) {
	plant := RecommendedPlant{PlantRecord: PlantRecord{
		ScientificName:       "Quercus agrifolia",
		CommonName:           "Coast Live Oak",
		WildlifeSupportScore: 95,
		MatureHeightFt:       40,
		MatureWidthFt:        70,
		GrowthRate:           "slow",
		LifespanYears:        250,
		EvergreenDeciduous:   "evergreen",
		FlowerColors:         []string{"yellow-green"},
		BloomMonths:          []int{3, 4},
		IndigenousUses:       []string{"Acorns as food staple"},
		Butterflies:          []Butterfly{{CommonName: "California Sister"}},
		Birds:                []Bird{{CommonName: "Acorn Woodpecker"}},
	}}

	lines := plantDetailLines(plant)
	joined := ""
	for _, l := range lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "40ft H x 70ft W")
	assert.Contains(t, joined, "Exceptional wildlife value")
	assert.Contains(t, joined, "Mar/Apr")
	assert.Contains(t, joined, "Acorns as food staple")
	assert.Contains(t, joined, "California Sister")
	assert.Contains(t, joined, "Acorn Woodpecker")
}
