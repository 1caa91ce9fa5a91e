package analytics

import (
	"testing"

	"astro-atlas/internal/analytics/dto"

	"github.com/stretchr/testify/assert"
)

// TestAnalyticsHumaDTOs tests that analytics Huma DTOs are properly structured
func TestAnalyticsHumaDTOs(t *testing.T) {
	var logsInput interface{} = &dto.GetLogsInput{}
	var logsOutput interface{} = &dto.ListLogsOutput{}
	var statsOutput interface{} = &dto.StatsOutput{}
	var trendsInput interface{} = &dto.GetTrendsInput{}
	var reportOutput interface{} = &dto.ReportOutput{}

	assert.NotNil(t, logsInput)
	assert.NotNil(t, logsOutput)
	assert.NotNil(t, statsOutput)
	assert.NotNil(t, trendsInput)
	assert.NotNil(t, reportOutput)
}

// TestAnalyticsHumaValidation tests that query parameters carry their values
func TestAnalyticsHumaValidation(t *testing.T) {
	logsInput := &dto.GetLogsInput{Limit: 25}
	assert.Equal(t, 25, logsInput.Limit)

	trendsInput := &dto.GetTrendsInput{Range: "month"}
	assert.Equal(t, "month", trendsInput.Range)

	reportOutput := &dto.ReportOutput{
		ReportID:    "report-123",
		ContentType: "text/html; charset=utf-8",
		Body:        []byte("<!DOCTYPE html>"),
	}
	assert.Equal(t, "report-123", reportOutput.ReportID)
	assert.NotEmpty(t, reportOutput.Body)
}
