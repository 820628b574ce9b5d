package zonemap

import (
	"strings"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/landings/internal/aggregate"
	"github.com/fyrsmithlabs/landings/internal/geo"
)

// Fill colors match the map legend: green increase, red decrease, gray
// no_change, light grays for the two inactive states. no_data is paler than
// no_baseline so "we don't know" stays visually distinct from "no prior
// year".
var fillColors = map[Category]string{
	CategoryIncrease:   "#2e7d32",
	CategoryDecrease:   "#c62828",
	CategoryNoChange:   "#9e9e9e",
	CategoryNoBaseline: "#e0e0e0",
	CategoryNoData:     "#f5f5f5",
}

// FillColor returns the hex fill for a category.
func FillColor(c Category) string {
	if color, ok := fillColors[c]; ok {
		return color
	}
	return fillColors[CategoryNoData]
}

// AnnotatedRegion is a boundary region with its join outcome.
type AnnotatedRegion struct {
	geo.Region
	Category Category `json:"category"`
	// Fill is the display color for the region.
	Fill string `json:"fill"`
	// Current and Prior carry the joined totals for hover display; nil
	// when the region had no matching aggregate row.
	Current *float64 `json:"current,omitempty"`
	Prior   *float64 `json:"prior,omitempty"`
}

// Debug summarizes join quality for auditing a data refresh.
type Debug struct {
	Matched   int `json:"matched_regions"`
	Unmatched int `json:"unmatched_regions"`
}

// Join matches each region's normalized zone letter against the aggregate
// table and classifies its year-over-year change. Unmatched regions receive
// no_data and the inactive fill rather than being omitted or defaulted to a
// real category. Matched regions also get category and fill written into
// their feature metadata for the renderer.
func Join(aggs []aggregate.ZoneYoY, regions []geo.Region, bandPct float64, logger *zap.Logger) ([]AnnotatedRegion, Debug) {
	if logger == nil {
		logger = zap.NewNop()
	}
	byZone := make(map[string]aggregate.ZoneYoY, len(aggs))
	for _, a := range aggs {
		byZone[strings.ToUpper(strings.TrimSpace(a.Zone))] = a
	}

	out := make([]AnnotatedRegion, 0, len(regions))
	var dbg Debug
	for _, region := range regions {
		ann := AnnotatedRegion{Region: region, Category: CategoryNoData}
		if a, ok := byZone[region.ZoneLetter]; ok && region.ZoneLetter != "" {
			curr := a.Current
			ann.Current = &curr
			ann.Prior = a.Prior
			ann.Category = Categorize(a.Current, a.Prior, bandPct)
			dbg.Matched++
		} else {
			dbg.Unmatched++
		}
		ann.Fill = FillColor(ann.Category)
		if region.Feature != nil {
			if region.Feature.Properties == nil {
				region.Feature.Properties = geojson.Properties{}
			}
			region.Feature.Properties["category"] = string(ann.Category)
			region.Feature.Properties["fill"] = ann.Fill
		}
		out = append(out, ann)
	}

	logger.Debug("joined aggregates onto boundary regions",
		zap.Int("aggregates", len(aggs)),
		zap.Int("matched", dbg.Matched),
		zap.Int("unmatched", dbg.Unmatched))
	return out, dbg
}
