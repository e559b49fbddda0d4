package main

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ============================================================================
// SEASONAL PHOTO AGGREGATOR
// ============================================================================

// Season buckets observations by calendar month: 3-5 spring, 6-8 summer,
// 9-11 fall, 12-2 winter.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

var seasonOrder = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

var seasonMonths = map[Season][]int{
	SeasonSpring: {3, 4, 5},
	SeasonSummer: {6, 7, 8},
	SeasonFall:   {9, 10, 11},
	SeasonWinter: {12, 1, 2},
}

func seasonForMonth(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// SeasonalPhoto is one externally-sourced photo assigned to a season.
type SeasonalPhoto struct {
	URL       string    `json:"url"`
	Season    Season    `json:"season"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	defaultPhotosPerSeason = 3
	photoFetchBudget       = 30 * time.Second
	photoRequestTimeout    = 15 * time.Second

	// seasonCoverageTarget is how many observations a season bucket needs
	// before supplementary queries stop trying to fill it.
	seasonCoverageTarget = 2

	placeCalifornia   = "14"
	placeUnitedStates = "1"

	qualityResearch = "research"
	qualityNeedsID  = "needs_id"
)

// prioritySpecies have sparse photographic coverage on iNaturalist and always
// get the supplementary query strategies.
var prioritySpecies = []string{
	"Quercus agrifolia",
	"Lupinus nanus",
	"Heteromeles arbutifolia",
	"Eriogonum nudum",
	"Baccharis pilularis",
	"Frangula californica",
	"Diplacus aurantiacus",
}

// baseSpeciesName strips subspecies and variety qualifiers down to the
// two-word species binomial.
func baseSpeciesName(scientificName string) string {
	parts := strings.Fields(scientificName)
	if len(parts) <= 2 {
		return scientificName
	}
	return strings.Join(parts[:2], " ")
}

func isPrioritySpecies(scientificName, baseName string) bool {
	sci := strings.ToLower(scientificName)
	base := strings.ToLower(baseName)
	for _, p := range prioritySpecies {
		lowered := strings.ToLower(p)
		if strings.Contains(sci, lowered) || strings.Contains(base, lowered) {
			return true
		}
	}
	return false
}

// photoQuery is one search strategy descriptor. The aggregator applies an
// ordered list of these with a single loop instead of duplicating fetch code
// per fallback.
type photoQuery struct {
	label   string
	taxon   string
	placeID string
	quality string
	perPage int
	months  []int
}

type inatPhoto struct {
	URL string `json:"url"`
}

type inatObservation struct {
	ID         int64       `json:"id"`
	ObservedOn string      `json:"observed_on"`
	CreatedAt  string      `json:"created_at"`
	Photos     []inatPhoto `json:"photos"`
}

type inatSearchResult struct {
	Results []inatObservation `json:"results"`
}

// INaturalistClient aggregates seasonal photos from the iNaturalist
// observations API.
type INaturalistClient struct {
	http      *resty.Client
	perSeason int
	budget    time.Duration
	logger    *zap.Logger
}

func NewINaturalistClient(baseURL string, perSeason int, logger *zap.Logger) *INaturalistClient {
	if perSeason <= 0 {
		perSeason = defaultPhotosPerSeason
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(photoRequestTimeout).
		SetHeader("User-Agent", "Marin-Native-Garden/1.0").
		SetHeader("Accept", "application/json")

	return &INaturalistClient{
		http:      client,
		perSeason: perSeason,
		budget:    photoFetchBudget,
		logger:    logger,
	}
}

// FetchSeasonalPhotos returns up to perSeason photos for each of the four
// seasons. It never fails: every query error is logged and treated as zero
// results, and a missing season stays missing rather than being backfilled
// from another season. The whole fetch runs under a hard budget; on timeout
// whatever was accumulated is returned.
func (c *INaturalistClient) FetchSeasonalPhotos(ctx context.Context, scientificName string) []SeasonalPhoto {
	ctx, cancel := context.WithTimeout(ctx, c.budget)
	defer cancel()

	baseName := baseSpeciesName(scientificName)
	priority := isPrioritySpecies(scientificName, baseName)

	perPage := 50
	if priority {
		perPage = 100
	}

	observations := make(map[int64]inatObservation)
	c.merge(observations, c.search(ctx, photoQuery{
		label:   "primary",
		taxon:   baseName,
		placeID: placeCalifornia,
		quality: qualityResearch,
		perPage: perPage,
	}))

	buckets := c.bucket(observations)

	if priority || len(buckets[SeasonWinter]) < seasonCoverageTarget {
		supplements := []photoQuery{
			{label: "broad-geo", taxon: scientificName, placeID: placeUnitedStates, quality: qualityResearch, perPage: perPage},
			{label: "relaxed-grade", taxon: baseName, placeID: placeCalifornia, quality: qualityNeedsID, perPage: perPage},
		}
		for _, season := range seasonOrder {
			if len(buckets[season]) < seasonCoverageTarget {
				supplements = append(supplements, photoQuery{
					label:   "months-" + string(season),
					taxon:   baseName,
					placeID: placeCalifornia,
					quality: qualityResearch,
					perPage: perPage,
					months:  seasonMonths[season],
				})
			}
		}

		for _, q := range supplements {
			if c.coverageMet(buckets) {
				break
			}
			if ctx.Err() != nil {
				break
			}
			// Month-targeted supplements are pointless once their season
			// filled up from an earlier merge.
			if len(q.months) > 0 {
				season := seasonForMonth(time.Month(q.months[0]))
				if len(buckets[season]) >= seasonCoverageTarget {
					continue
				}
			}
			c.merge(observations, c.search(ctx, q))
			buckets = c.bucket(observations)
		}
	}

	var photos []SeasonalPhoto
	for _, season := range seasonOrder {
		entries := buckets[season]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		})
		if len(entries) > c.perSeason {
			entries = entries[:c.perSeason]
		}
		photos = append(photos, entries...)
	}

	c.logger.Info("seasonal photo aggregation complete",
		zap.String("species", scientificName),
		zap.Bool("priority", priority),
		zap.Int("observations", len(observations)),
		zap.Int("photos", len(photos)),
	)
	return photos
}

// search runs one strategy. Failures are logged and reported as zero results.
func (c *INaturalistClient) search(ctx context.Context, q photoQuery) []inatObservation {
	params := map[string]string{
		"taxon_name":    q.taxon,
		"photos":        "true",
		"has":           "photos",
		"per_page":      strconv.Itoa(q.perPage),
		"order":         "desc",
		"order_by":      "created_at",
		"quality_grade": q.quality,
		"place_id":      q.placeID,
	}
	if len(q.months) > 0 {
		parts := make([]string, len(q.months))
		for i, m := range q.months {
			parts[i] = strconv.Itoa(m)
		}
		params["month"] = strings.Join(parts, ",")
	}

	var result inatSearchResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/observations")
	if err != nil {
		c.logger.Warn("photo query failed",
			zap.String("strategy", q.label),
			zap.String("taxon", q.taxon),
			zap.Error(err),
		)
		return nil
	}
	if resp.IsError() {
		c.logger.Warn("photo query rejected",
			zap.String("strategy", q.label),
			zap.String("taxon", q.taxon),
			zap.Int("status", resp.StatusCode()),
		)
		return nil
	}
	return result.Results
}

func (c *INaturalistClient) merge(into map[int64]inatObservation, results []inatObservation) {
	for _, obs := range results {
		if _, seen := into[obs.ID]; seen {
			continue
		}
		into[obs.ID] = obs
	}
}

// bucket assigns every observation with a photo to its calendar season.
func (c *INaturalistClient) bucket(observations map[int64]inatObservation) map[Season][]SeasonalPhoto {
	buckets := make(map[Season][]SeasonalPhoto)
	for _, obs := range observations {
		if len(obs.Photos) == 0 {
			continue
		}
		ts, ok := parseObservationTime(obs)
		if !ok {
			continue
		}
		season := seasonForMonth(ts.Month())
		buckets[season] = append(buckets[season], SeasonalPhoto{
			URL:       strings.Replace(obs.Photos[0].URL, "square", "medium", 1),
			Season:    season,
			Timestamp: ts,
		})
	}
	return buckets
}

func (c *INaturalistClient) coverageMet(buckets map[Season][]SeasonalPhoto) bool {
	for _, season := range seasonOrder {
		if len(buckets[season]) < seasonCoverageTarget {
			return false
		}
	}
	return true
}

// parseObservationTime prefers observed_on and falls back to created_at.
func parseObservationTime(obs inatObservation) (time.Time, bool) {
	for _, raw := range []string{obs.ObservedOn, obs.CreatedAt} {
		if raw == "" {
			continue
		}
		if ts, err := time.Parse("2006-01-02", raw); err == nil {
			return ts, true
		}
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
