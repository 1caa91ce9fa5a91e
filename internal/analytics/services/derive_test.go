package services

import (
	"math/rand"
	"testing"

	"astro-atlas/pkg/category"
)

func sampleRecords() []ObjectRecord {
	return []ObjectRecord{
		{ID: "1", Name: "Mars", Category: category.Planet, Views: 120, Favorites: 30},
		{ID: "2", Name: "Jupiter", Category: category.Planet, Views: 80, Favorites: 8},
		{ID: "3", Name: "Sirius", Category: category.Star, Views: 50, Favorites: 10},
		{ID: "4", Name: "Andromeda", Category: category.Galaxy, Views: 150, Favorites: 45},
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(sampleRecords(), 93)

	if stats.TotalObjects != 4 {
		t.Errorf("TotalObjects = %d, want 4", stats.TotalObjects)
	}
	if stats.TotalViews != 400 {
		t.Errorf("TotalViews = %d, want 400", stats.TotalViews)
	}
	if stats.TotalFavorites != 93 {
		t.Errorf("TotalFavorites = %d, want 93", stats.TotalFavorites)
	}
	// 400 * 0.15
	if stats.ActiveUsers != 60 {
		t.Errorf("ActiveUsers = %d, want 60", stats.ActiveUsers)
	}
	if stats.AvgViewsPerObject != 100 {
		t.Errorf("AvgViewsPerObject = %d, want 100", stats.AvgViewsPerObject)
	}
	// 93 / 400 * 100
	if stats.EngagementRate != 23.25 {
		t.Errorf("EngagementRate = %v, want 23.25", stats.EngagementRate)
	}
	if stats.GrowthRate != 12.5 {
		t.Errorf("GrowthRate = %v, want 12.5", stats.GrowthRate)
	}
}

func TestComputeStatsNoViews(t *testing.T) {
	records := []ObjectRecord{
		{ID: "1", Name: "Vega", Category: category.Star},
	}
	stats := ComputeStats(records, 5)

	if stats.EngagementRate != 0 {
		t.Errorf("EngagementRate with no views = %v, want 0", stats.EngagementRate)
	}
	if stats.ActiveUsers != 0 {
		t.Errorf("ActiveUsers with no views = %d, want 0", stats.ActiveUsers)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, 0)
	if stats.TotalObjects != 0 || stats.AvgViewsPerObject != 0 || stats.EngagementRate != 0 {
		t.Errorf("empty input should derive zeroes, got %+v", stats)
	}
}

func TestRankObjects(t *testing.T) {
	ranked := RankObjects(sampleRecords())

	if len(ranked) != 4 {
		t.Fatalf("len = %d, want 4", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Views > ranked[i-1].Views {
			t.Fatalf("rows not ordered by views: %d before %d", ranked[i-1].Views, ranked[i].Views)
		}
	}
	if ranked[0].Name != "Andromeda" {
		t.Errorf("top object = %q, want Andromeda", ranked[0].Name)
	}
	// 30 / 120 * 100
	for _, row := range ranked {
		if row.Name == "Mars" && row.EngagementRate != 25.0 {
			t.Errorf("Mars engagement = %v, want 25.0", row.EngagementRate)
		}
	}
}

func TestRankObjectsUnviewed(t *testing.T) {
	ranked := RankObjects([]ObjectRecord{{ID: "1", Name: "Vega", Favorites: 3}})
	if ranked[0].EngagementRate != 0 {
		t.Errorf("engagement without views = %v, want 0", ranked[0].EngagementRate)
	}
}

func TestAggregateCategories(t *testing.T) {
	records := append(sampleRecords(),
		// Casing variants must land in the same bucket as their category.
		ObjectRecord{ID: "5", Name: "Saturn", Category: category.Category("Planet"), Views: 40, Favorites: 4},
		ObjectRecord{ID: "6", Name: "Mystery", Category: category.Category("quasar"), Views: 10},
	)

	aggregated := AggregateCategories(records)

	totalViews := 0
	totalPercentage := 0
	byName := map[string]int{}
	for _, row := range aggregated {
		totalViews += row.Value
		totalPercentage += row.Percentage
		byName[row.Name] = row.Value
	}

	if totalViews != 450 {
		t.Errorf("category views sum = %d, want 450", totalViews)
	}
	// Rounding may drift a point either way.
	if totalPercentage < 98 || totalPercentage > 102 {
		t.Errorf("percentages sum = %d, want ~100", totalPercentage)
	}
	if byName["Planets"] != 240 {
		t.Errorf("Planets views = %d, want 240", byName["Planets"])
	}
	if byName["Unknowns"] != 10 {
		t.Errorf("Unknowns views = %d, want 10", byName["Unknowns"])
	}

	for i := 1; i < len(aggregated); i++ {
		if aggregated[i].Value > aggregated[i-1].Value {
			t.Fatalf("buckets not ordered by views: %d before %d", aggregated[i-1].Value, aggregated[i].Value)
		}
	}
}

func TestAggregateCategoriesEmpty(t *testing.T) {
	if got := AggregateCategories(nil); len(got) != 0 {
		t.Errorf("empty input should aggregate to no buckets, got %d", len(got))
	}
}

func TestTrendSeries(t *testing.T) {
	tests := []struct {
		timeRange string
		labels    []string
	}{
		{"day", []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}},
		{"week", []string{"Week 1", "Week 2", "Week 3", "Week 4"}},
		{"month", []string{"Week 1", "Week 2", "Week 3", "Week 4"}},
		{"year", []string{"Q1", "Q2", "Q3", "Q4"}},
		{"fortnight", []string{"Week 1", "Week 2", "Week 3", "Week 4"}},
	}

	for _, tt := range tests {
		t.Run(tt.timeRange, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			series := TrendSeries(rng, tt.timeRange, 400)

			if len(series) != len(tt.labels) {
				t.Fatalf("len = %d, want %d", len(series), len(tt.labels))
			}
			for i, point := range series {
				if point.Period != tt.labels[i] {
					t.Errorf("period[%d] = %q, want %q", i, point.Period, tt.labels[i])
				}
			}
		})
	}
}

func TestTrendSeriesJitterBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	totalViews := 4000
	series := TrendSeries(rng, "week", totalViews)

	base := float64(totalViews) / 4
	for _, point := range series {
		if float64(point.Views) < base*0.7-1 || float64(point.Views) > base*1.3+1 {
			t.Errorf("views %d outside jitter bounds around %v", point.Views, base)
		}
		if point.Interactions < 0 || point.Favorites < 0 || point.Users < 0 {
			t.Errorf("negative series values: %+v", point)
		}
	}
}

func TestTrendSeriesDeterministicForSeed(t *testing.T) {
	a := TrendSeries(rand.New(rand.NewSource(1)), "year", 1000)
	b := TrendSeries(rand.New(rand.NewSource(1)), "year", 1000)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different series at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
