package services

import (
	"math"
	"math/rand"
	"sort"

	"astro-atlas/internal/analytics/models"
	"astro-atlas/pkg/category"
)

// ObjectRecord is the neutral input row the derivations run over. The
// service assembles records from the catalog and favorites collections; the
// functions below never touch storage.
type ObjectRecord struct {
	ID          string
	Name        string
	Category    category.Category
	Views       int
	Favorites   int
	Description string
}

// growthRate is a fixed display value; no historical records exist to
// compute a real one.
const growthRate = 12.5

// ComputeStats derives the platform-wide aggregate. Engagement is 0 when
// there are no views, never a division by zero.
func ComputeStats(records []ObjectRecord, totalFavorites int) models.PlatformStats {
	totalViews := 0
	for _, r := range records {
		totalViews += r.Views
	}

	stats := models.PlatformStats{
		TotalObjects:   len(records),
		TotalViews:     totalViews,
		TotalFavorites: totalFavorites,
		ActiveUsers:    int(float64(totalViews) * 0.15),
		GrowthRate:     growthRate,
	}
	if len(records) > 0 {
		stats.AvgViewsPerObject = int(math.Round(float64(totalViews) / float64(len(records))))
	}
	if totalViews > 0 {
		stats.EngagementRate = round2(float64(totalFavorites) / float64(totalViews) * 100)
	}
	return stats
}

// RankObjects converts records into per-object rows ordered by views,
// highest first. Per-object engagement is rounded to one decimal and is 0
// for unviewed objects.
func RankObjects(records []ObjectRecord) []models.ObjectStats {
	ranked := make([]models.ObjectStats, 0, len(records))
	for _, r := range records {
		row := models.ObjectStats{
			ID:          r.ID,
			Name:        r.Name,
			Category:    r.Category.String(),
			Views:       r.Views,
			Favorites:   r.Favorites,
			Description: r.Description,
		}
		if r.Views > 0 {
			row.EngagementRate = round1(float64(r.Favorites) / float64(r.Views) * 100)
		}
		ranked = append(ranked, row)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})
	return ranked
}

// AggregateCategories groups records by their parsed category, so casing
// variants land in one bucket. Per-category views sum to the platform total,
// and percentages sum to roughly 100 when any views exist.
func AggregateCategories(records []ObjectRecord) []models.CategoryStats {
	type bucket struct {
		count     int
		views     int
		favorites int
	}

	totalViews := 0
	buckets := map[category.Category]*bucket{}
	for _, r := range records {
		cat := category.Normalize(r.Category.String())
		b, ok := buckets[cat]
		if !ok {
			b = &bucket{}
			buckets[cat] = b
		}
		b.count++
		b.views += r.Views
		b.favorites += r.Favorites
		totalViews += r.Views
	}

	aggregated := make([]models.CategoryStats, 0, len(buckets))
	for cat, b := range buckets {
		row := models.CategoryStats{
			Name:              cat.Display(),
			Value:             b.views,
			Count:             b.count,
			Favorites:         b.favorites,
			AvgViewsPerObject: int(math.Round(float64(b.views) / float64(b.count))),
		}
		if totalViews > 0 {
			row.Percentage = int(math.Round(float64(b.views) / float64(totalViews) * 100))
		}
		if b.views > 0 {
			row.EngagementRate = round1(float64(b.favorites) / float64(b.views) * 100)
		}
		aggregated = append(aggregated, row)
	}

	sort.SliceStable(aggregated, func(i, j int) bool {
		if aggregated[i].Value != aggregated[j].Value {
			return aggregated[i].Value > aggregated[j].Value
		}
		return aggregated[i].Name < aggregated[j].Name
	})
	return aggregated
}

// trendLabels maps each time-range selector to its period labels.
var trendLabels = map[string][]string{
	"day":   {"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	"week":  {"Week 1", "Week 2", "Week 3", "Week 4"},
	"month": {"Week 1", "Week 2", "Week 3", "Week 4"},
	"year":  {"Q1", "Q2", "Q3", "Q4"},
}

// TrendSeries synthesizes a series by jittering around the per-period share
// of total views. The values are synthetic; only the structure (labels,
// ordering, ratios' bounds) is stable. An unknown range falls back to "week".
func TrendSeries(rng *rand.Rand, timeRange string, totalViews int) []models.TrendPoint {
	labels, ok := trendLabels[timeRange]
	if !ok {
		labels = trendLabels["week"]
	}

	base := float64(totalViews) / float64(len(labels))
	series := make([]models.TrendPoint, 0, len(labels))
	for _, label := range labels {
		series = append(series, models.TrendPoint{
			Period:       label,
			Views:        jitter(rng, base),
			Interactions: jitter(rng, base*0.6),
			Favorites:    jitter(rng, base*0.3),
			Users:        jitter(rng, base*0.15),
		})
	}
	return series
}

// jitter scales base by a factor drawn uniformly from [0.7, 1.3).
func jitter(rng *rand.Rand, base float64) int {
	return int(math.Round(base * (0.7 + rng.Float64()*0.6)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
