package dto

// GetLogsInput carries the query for GET /analytics/logs.
type GetLogsInput struct {
	Limit int `query:"limit" minimum:"1" maximum:"500" default:"50" doc:"Maximum number of entries"`
}

// GetStatsInput is the (empty) input for GET /analytics/stats.
type GetStatsInput struct{}

// GetCategoriesInput is the (empty) input for GET /analytics/categories.
type GetCategoriesInput struct{}

// GetTrendsInput selects the time range for GET /analytics/trends.
type GetTrendsInput struct {
	Range string `query:"range" enum:"day,week,month,year" default:"week" doc:"Trend time range"`
}

// GetReportInput is the (empty) input for GET /analytics/report.
type GetReportInput struct{}
