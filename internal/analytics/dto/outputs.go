package dto

import "astro-atlas/internal/analytics/models"

// ListLogsOutput returns recent activity entries, newest first.
type ListLogsOutput struct {
	Body []models.ActivityLog
}

// StatsOutput wraps the platform aggregate.
type StatsOutput struct {
	Body models.PlatformStats
}

// CategoriesOutput wraps the per-category aggregation.
type CategoriesOutput struct {
	Body []models.CategoryStats
}

// TrendsOutput wraps the synthetic trend series.
type TrendsOutput struct {
	Body []models.TrendPoint
}

// ReportOutput returns the generated HTML document with its identifier in a
// response header so clients can correlate downloads.
type ReportOutput struct {
	ReportID    string `header:"X-Report-Id"`
	ContentType string `header:"Content-Type"`
	Body        []byte
}
