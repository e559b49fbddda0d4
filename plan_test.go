package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGeocoder struct {
	result *GeocodeResult
	err    error
	calls  atomic.Int64
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakePhotoFetcher struct {
	photos map[string][]SeasonalPhoto
	calls  atomic.Int64
}

func (f *fakePhotoFetcher) FetchSeasonalPhotos(ctx context.Context, scientificName string) []SeasonalPhoto {
	f.calls.Add(1)
	return f.photos[scientificName]
}

func newTestPlanner(g Geocoder, p PhotoFetcher) *Planner {
	planner := NewPlanner(g, p, zap.NewNop())
	planner.now = func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return planner
}

func TestBuildPlanHappyPath(t *testing.T) {
	geo := &fakeGeocoder{result: &GeocodeResult{City: "Mill Valley", Latitude: 37.9, Longitude: -122.5}}
	photos := &fakePhotoFetcher{photos: map[string][]SeasonalPhoto{
		"Adenostoma fasciculatum": {{URL: "https://p/1.jpg", Season: SeasonSummer}},
	}}

	plan, err := newTestPlanner(geo, photos).BuildPlan(context.Background(),
		"100 Throckmorton Ave, Mill Valley", "alex@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Mill Valley", plan.City)
	assert.Equal(t, RegionChaparral, plan.Region)
	assert.Equal(t, DistrictMarinWater, plan.WaterDistrict)
	assert.NotEmpty(t, plan.Plants)
	assert.NotEmpty(t, plan.Rebates)
	assert.NotEmpty(t, plan.Nurseries)
	assert.Greater(t, plan.SunExposure.Hours, 0.0)

	// Every recommended plant got exactly one photo fetch.
	assert.Equal(t, int64(len(plan.Plants)), photos.calls.Load())

	var chamise *RecommendedPlant
	for i := range plan.Plants {
		if plan.Plants[i].ScientificName == "Adenostoma fasciculatum" {
			chamise = &plan.Plants[i]
		}
	}
	require.NotNil(t, chamise, "Chamise should be recommended for Chaparral")
	assert.Len(t, chamise.SeasonalPhotos, 1)
}

func TestBuildPlanValidation(t *testing.T) {
	geo := &fakeGeocoder{result: &GeocodeResult{City: "Novato"}}
	photos := &fakePhotoFetcher{}
	planner := newTestPlanner(geo, photos)

	cases := []struct {
		name    string
		address string
		email   string
	}{
		{"empty address", "", "a@b.com"},
		{"blank address", "   ", "a@b.com"},
		{"empty email", "1 Main St", ""},
		{"no at sign", "1 Main St", "not-an-email"},
		{"no domain dot", "1 Main St", "a@b"},
		{"space in email", "1 Main St", "a b@c.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planner.BuildPlan(context.Background(), tc.address, tc.email)
			require.Error(t, err)
			assert.ErrorIs(t, err, errValidation)
		})
	}

	// Validation failures never reach the geocoder.
	assert.Zero(t, geo.calls.Load())
	assert.Zero(t, photos.calls.Load())
}

func TestBuildPlanTrimsInput(t *testing.T) {
	geo := &fakeGeocoder{result: &GeocodeResult{City: "Novato"}}
	plan, err := newTestPlanner(geo, &fakePhotoFetcher{}).BuildPlan(context.Background(),
		"  1 Main St, Novato  ", "  alex@example.com  ")
	require.NoError(t, err)
	assert.Equal(t, "1 Main St, Novato", plan.Address)
	assert.Equal(t, "alex@example.com", plan.Email)
}

func TestBuildPlanGeocodeFailureAborts(t *testing.T) {
	geo := &fakeGeocoder{err: errors.New("upstream down")}
	photos := &fakePhotoFetcher{}

	_, err := newTestPlanner(geo, photos).BuildPlan(context.Background(), "1 Main St", "a@b.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, errGeocode)
	assert.Zero(t, photos.calls.Load(), "no downstream work after geocode failure")
}

func TestBuildPlanPhotoGapsDegrade(t *testing.T) {
	// The fetcher returns nothing for any plant; the plan still succeeds with
	// empty photo lists.
	geo := &fakeGeocoder{result: &GeocodeResult{City: "Nicasio"}}
	photos := &fakePhotoFetcher{}

	plan, err := newTestPlanner(geo, photos).BuildPlan(context.Background(), "1 Ranch Rd, Nicasio", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, RegionGrassland, plan.Region)
	require.NotEmpty(t, plan.Plants)
	for _, p := range plan.Plants {
		assert.Empty(t, p.SeasonalPhotos)
	}
}

func TestBuildPlanNovatoGetsNorthMarinRebates(t *testing.T) {
	geo := &fakeGeocoder{result: &GeocodeResult{City: "Novato"}}
	plan, err := newTestPlanner(geo, &fakePhotoFetcher{}).BuildPlan(context.Background(), "1 Main St, Novato", "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, DistrictNorthMarin, plan.WaterDistrict)
	require.NotEmpty(t, plan.Rebates)
	assert.Equal(t, "Landscape Conversion", plan.Rebates[0].Title)
}

func TestBuildPlanPlantOrderPreserved(t *testing.T) {
	geo := &fakeGeocoder{result: &GeocodeResult{City: "San Rafael"}}
	plan, err := newTestPlanner(geo, &fakePhotoFetcher{}).BuildPlan(context.Background(), "1 Main St, San Rafael", "a@b.com")
	require.NoError(t, err)

	expected := plantsForRegion(RegionOakWoodland, plan.SunExposure.Level)
	require.Equal(t, len(expected), len(plan.Plants))
	for i := range expected {
		assert.Equal(t, expected[i].ScientificName, plan.Plants[i].ScientificName,
			"concurrent photo fan-out must not reorder plants")
	}
}
