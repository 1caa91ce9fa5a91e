package routes

import (
	"context"
	"net/http"

	"astro-atlas/internal/analytics/dto"
	"astro-atlas/internal/analytics/services"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the analytics routes module
type Module struct {
	service *services.Service
}

func NewModule(service *services.Service) *Module {
	return &Module{service: service}
}

// RegisterRoutes registers the analytics operations on the shared API.
func (m *Module) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-activity-logs",
		Method:      http.MethodGet,
		Path:        "/analytics/logs",
		Summary:     "List recent activity logs",
		Tags:        []string{"Analytics"},
	}, m.logsHandler)

	huma.Register(api, huma.Operation{
		OperationID: "get-platform-stats",
		Method:      http.MethodGet,
		Path:        "/analytics/stats",
		Summary:     "Get platform-wide aggregate statistics",
		Tags:        []string{"Analytics"},
	}, m.statsHandler)

	huma.Register(api, huma.Operation{
		OperationID: "get-category-stats",
		Method:      http.MethodGet,
		Path:        "/analytics/categories",
		Summary:     "Get per-category view and favorite shares",
		Tags:        []string{"Analytics"},
	}, m.categoriesHandler)

	huma.Register(api, huma.Operation{
		OperationID: "get-trend-series",
		Method:      http.MethodGet,
		Path:        "/analytics/trends",
		Summary:     "Get the synthetic trend series for a time range",
		Tags:        []string{"Analytics"},
	}, m.trendsHandler)

	huma.Register(api, huma.Operation{
		OperationID: "download-platform-report",
		Method:      http.MethodGet,
		Path:        "/analytics/report",
		Summary:     "Generate the downloadable HTML platform report",
		Tags:        []string{"Analytics"},
	}, m.reportHandler)
}

func (m *Module) logsHandler(ctx context.Context, input *dto.GetLogsInput) (*dto.ListLogsOutput, error) {
	logs, err := m.service.Logs(ctx, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to fetch activity logs", err)
	}
	return &dto.ListLogsOutput{Body: logs}, nil
}

func (m *Module) statsHandler(ctx context.Context, input *dto.GetStatsInput) (*dto.StatsOutput, error) {
	stats, err := m.service.Stats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute platform statistics", err)
	}
	return &dto.StatsOutput{Body: stats}, nil
}

func (m *Module) categoriesHandler(ctx context.Context, input *dto.GetCategoriesInput) (*dto.CategoriesOutput, error) {
	categories, err := m.service.Categories(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute category statistics", err)
	}
	return &dto.CategoriesOutput{Body: categories}, nil
}

func (m *Module) trendsHandler(ctx context.Context, input *dto.GetTrendsInput) (*dto.TrendsOutput, error) {
	series, err := m.service.Trends(ctx, input.Range)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute trend series", err)
	}
	return &dto.TrendsOutput{Body: series}, nil
}

func (m *Module) reportHandler(ctx context.Context, input *dto.GetReportInput) (*dto.ReportOutput, error) {
	doc, info, err := m.service.Report(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate platform report", err)
	}
	return &dto.ReportOutput{
		ReportID:    info.ReportID,
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(doc),
	}, nil
}
