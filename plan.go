package main

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ============================================================================
// PLAN ASSEMBLY (ORCHESTRATOR)
// ============================================================================

// errValidation marks input problems caught before any external call.
var errValidation = errors.New("validation failed")

// errGeocode marks an unresolvable address, the only upstream failure that
// aborts the pipeline.
var errGeocode = errors.New("address resolution failed")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PhotoFetcher is the seasonal photo aggregation boundary. Implementations
// never fail; they return whatever was accumulated.
type PhotoFetcher interface {
	FetchSeasonalPhotos(ctx context.Context, scientificName string) []SeasonalPhoto
}

// RecommendedPlant is a catalog entry enriched with fetched photos.
type RecommendedPlant struct {
	PlantRecord
	SeasonalPhotos []SeasonalPhoto `json:"seasonalPhotos"`
}

// PlanResult is the assembled recommendation payload.
type PlanResult struct {
	Address         string             `json:"address"`
	Email           string             `json:"email"`
	City            string             `json:"city"`
	Region          Region             `json:"region"`
	WaterDistrict   WaterDistrict      `json:"waterDistrict"`
	SunExposure     SunExposure        `json:"sunExposure"`
	Plants          []RecommendedPlant `json:"plants"`
	Rebates         []RebateOffer      `json:"rebates"`
	CompanionGroups []CompanionGroup   `json:"companionGroups"`
	Nurseries       []Nursery          `json:"nurseries"`
}

// Planner sequences the property-to-recommendation pipeline. All collaborators
// are injected; lifecycle belongs to main.
type Planner struct {
	geocoder Geocoder
	photos   PhotoFetcher
	logger   *zap.Logger
	now      func() time.Time
}

func NewPlanner(geocoder Geocoder, photos PhotoFetcher, logger *zap.Logger) *Planner {
	return &Planner{
		geocoder: geocoder,
		photos:   photos,
		logger:   logger,
		now:      time.Now,
	}
}

// BuildPlan runs the pipeline: validate → geocode → classify → plants →
// photo fan-out → rebates → companions. Only validation and geocoding can
// fail; everything downstream degrades to partial output.
func (p *Planner) BuildPlan(ctx context.Context, address, email string) (*PlanResult, error) {
	address = strings.TrimSpace(address)
	email = strings.TrimSpace(email)

	if address == "" {
		return nil, fmt.Errorf("%w: address is required", errValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", errValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: malformed email address", errValidation)
	}

	located, err := p.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errGeocode, err)
	}

	region := classifyRegion(located.City)
	district := classifyWaterDistrict(located.City)
	p.logger.Info("classified property",
		zap.String("city", located.City),
		zap.String("region", string(region)),
		zap.String("district", string(district)),
	)

	sun := estimateSunExposure(address, p.now().Month())
	plants := plantsForRegion(region, sun.Level)

	enriched := make([]RecommendedPlant, len(plants))
	g, gctx := errgroup.WithContext(ctx)
	for i, plant := range plants {
		i, plant := i, plant
		g.Go(func() error {
			// FetchSeasonalPhotos never fails; an empty slice is the
			// degraded outcome for that one plant.
			enriched[i] = RecommendedPlant{
				PlantRecord:    plant,
				SeasonalPhotos: p.photos.FetchSeasonalPhotos(gctx, plant.ScientificName),
			}
			return nil
		})
	}
	_ = g.Wait()

	plain := make([]PlantRecord, len(enriched))
	for i, rp := range enriched {
		plain[i] = rp.PlantRecord
	}

	return &PlanResult{
		Address:         address,
		Email:           email,
		City:            located.City,
		Region:          region,
		WaterDistrict:   district,
		SunExposure:     sun,
		Plants:          enriched,
		Rebates:         rebatesForDistrict(district),
		CompanionGroups: companionGroupsFor(plain),
		Nurseries:       recommendedNurseries,
	}, nil
}
