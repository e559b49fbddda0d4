package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// ============================================================================
// PLAN PDF RENDERER
// ============================================================================

// PDFRenderer turns an assembled plan into report bytes. Rendering is
// best-effort; a failure surfaces as a status field, never as a request
// failure.
type PDFRenderer interface {
	Render(ctx context.Context, plan *PlanResult) ([]byte, error)
}

const (
	pageWidthPt  = 612.0
	pageHeightPt = 792.0
	marginLeft   = 50.0
	topY         = 42.0

	photoSizePt    = 60.0
	photoSpacingPt = 10.0
	photosPerPlant = 4
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// GardenPDFRenderer draws the multi-page garden plan with manual pagination.
type GardenPDFRenderer struct {
	images *resty.Client
	logger *zap.Logger
}

func NewGardenPDFRenderer(logger *zap.Logger) *GardenPDFRenderer {
	return &GardenPDFRenderer{
		images: resty.New().
			SetTimeout(10*time.Second).
			SetHeader("User-Agent", "Marin-Native-Garden/1.0"),
		logger: logger,
	}
}

// pdfPage tracks the y cursor so sections can ask for space and page-break at
// the same thresholds the report has always used.
type pdfPage struct {
	doc *gofpdf.Fpdf
	y   float64
}

func (p *pdfPage) ensureSpace(needed float64) {
	if p.y+needed > pageHeightPt-bottomMargin {
		p.doc.AddPage()
		p.y = topY
	}
}

const bottomMargin = 42.0

func (p *pdfPage) heading(size float64, r, g, b int, text string) {
	p.doc.SetFont("Helvetica", "B", size)
	p.doc.SetTextColor(r, g, b)
	p.y += size
	p.doc.Text(marginLeft, p.y, text)
}

func (p *pdfPage) line(size float64, text string) {
	p.doc.SetFont("Helvetica", "", size)
	p.doc.SetTextColor(26, 26, 26)
	p.y += size + 4
	p.doc.Text(marginLeft, p.y, text)
}

func (r *GardenPDFRenderer) Render(ctx context.Context, plan *PlanResult) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	page := &pdfPage{doc: doc, y: topY}

	page.heading(24, 51, 102, 51, "Marin Native Garden Plan")
	page.y += 16

	page.line(12, "Address: "+plan.Address)
	page.line(12, "Plant Community: "+string(plan.Region))
	page.line(12, "Water District: "+string(plan.WaterDistrict))
	page.line(12, fmt.Sprintf("Estimated Sun: %.1f hours/day (%s) - %s",
		plan.SunExposure.Hours, plan.SunExposure.Level, plan.SunExposure.Reason))
	page.y += 20

	page.ensureSpace(100)
	page.heading(14, 51, 102, 51, "Plant Community Summary")
	page.y += 6
	for _, sentence := range strings.Split(communitySummary(plan.Region), ". ") {
		page.ensureSpace(15)
		page.line(10, strings.TrimSuffix(sentence, ".")+".")
	}
	page.y += 20

	page.heading(14, 51, 102, 51, "Recommended Native Plants")
	page.y += 10

	for _, plant := range plan.Plants {
		page.ensureSpace(200)
		page.heading(12, 51, 102, 51, fmt.Sprintf("%s (%s)", plant.CommonName, plant.ScientificName))
		page.y += 4

		for _, detail := range plantDetailLines(plant) {
			page.ensureSpace(50)
			page.line(10, detail)
		}

		if len(plant.SeasonalPhotos) > 0 {
			r.drawPhotoGrid(ctx, page, plant)
		}
		page.y += 20
	}

	page.ensureSpace(100)
	page.heading(14, 51, 102, 51, "Water District Rebates")
	page.y += 10
	for _, rebate := range plan.Rebates {
		page.ensureSpace(100)
		page.heading(12, 51, 102, 51, rebate.Title)
		page.y += 4
		page.line(10, rebate.Requirements)
		page.line(10, "Rebate Amount: "+rebate.Amount)
		if rebate.Link != "" {
			doc.SetFont("Helvetica", "", 10)
			doc.SetTextColor(0, 0, 255)
			page.y += 14
			doc.Text(marginLeft, page.y, "More Info: "+rebate.Link)
		}
		page.y += 20
	}

	page.ensureSpace(100)
	page.heading(14, 51, 102, 51, "Where to Buy Native Plants")
	page.y += 10
	for _, nursery := range plan.Nurseries {
		page.ensureSpace(60)
		page.heading(11, 51, 102, 51, nursery.Name)
		page.y += 2
		page.line(10, nursery.Summary)
		page.line(10, nursery.Phone+" - "+nursery.Website)
		page.y += 10
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render plan pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func plantDetailLines(plant RecommendedPlant) []string {
	details := []string{
		fmt.Sprintf("Mature Size: %.0fft H x %.0fft W", plant.MatureHeightFt, plant.MatureWidthFt),
		fmt.Sprintf("Growth Rate: %s", plant.GrowthRate),
		fmt.Sprintf("Lifespan: ~%d years", plant.LifespanYears),
		fmt.Sprintf("Type: %s", plant.EvergreenDeciduous),
		fmt.Sprintf("Wildlife: %s", plant.wildlifeBand()),
	}
	if len(plant.FlowerColors) > 0 {
		months := make([]string, 0, len(plant.BloomMonths))
		for _, m := range plant.BloomMonths {
			months = append(months, monthNames[(m-1)%12])
		}
		details = append(details, fmt.Sprintf("Bloom: %s (%s)",
			strings.Join(plant.FlowerColors, ", "), strings.Join(months, "/")))
	}
	if len(plant.IndigenousUses) > 0 {
		details = append(details, "Indigenous Uses: "+strings.Join(plant.IndigenousUses, "; "))
	}
	if names := wildlifeNames(plant.Butterflies); names != "" {
		details = append(details, "Butterflies: "+names)
	}
	if names := birdNames(plant.Birds); names != "" {
		details = append(details, "Birds: "+names)
	}
	return details
}

func wildlifeNames(butterflies []Butterfly) string {
	var names []string
	for i, b := range butterflies {
		if i == 3 {
			break
		}
		names = append(names, b.CommonName)
	}
	return strings.Join(names, ", ")
}

func birdNames(birds []Bird) string {
	var names []string
	for i, b := range birds {
		if i == 3 {
			break
		}
		names = append(names, b.CommonName)
	}
	return strings.Join(names, ", ")
}

// drawPhotoGrid fetches and embeds up to four seasonal photos in a row, each
// captioned with its season. Any individual photo failure is logged and the
// slot left empty.
func (r *GardenPDFRenderer) drawPhotoGrid(ctx context.Context, page *pdfPage, plant RecommendedPlant) {
	page.ensureSpace(photoSizePt + 50)
	page.y += 14
	page.doc.SetFont("Helvetica", "B", 10)
	page.doc.SetTextColor(26, 26, 26)
	page.doc.Text(marginLeft, page.y, "Seasonal Photos:")
	page.y += 8

	count := len(plant.SeasonalPhotos)
	if count > photosPerPlant {
		count = photosPerPlant
	}

	for i := 0; i < count; i++ {
		photo := plant.SeasonalPhotos[i]
		x := marginLeft + float64(i)*(photoSizePt+photoSpacingPt)

		data, imgType, err := r.fetchImage(ctx, photo.URL)
		if err != nil {
			r.logger.Warn("photo embed failed",
				zap.String("plant", plant.CommonName),
				zap.String("url", photo.URL),
				zap.Error(err),
			)
			continue
		}

		opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: false}
		page.doc.RegisterImageOptionsReader(photo.URL, opts, bytes.NewReader(data))
		page.doc.ImageOptions(photo.URL, x, page.y, photoSizePt, photoSizePt, false, opts, 0, "")

		page.doc.SetFont("Helvetica", "", 8)
		page.doc.Text(x, page.y+photoSizePt+10, string(photo.Season))
	}

	page.y += photoSizePt + 24
}

func (r *GardenPDFRenderer) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := r.images.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("fetch image: status %d", resp.StatusCode())
	}

	data := resp.Body()
	switch http.DetectContentType(data) {
	case "image/png":
		return data, "PNG", nil
	case "image/jpeg":
		return data, "JPG", nil
	case "image/gif":
		return data, "GIF", nil
	default:
		return nil, "", fmt.Errorf("unsupported image type for %s", url)
	}
}
