package services

import (
	"fmt"
	"html"
	"strings"
	"time"

	"astro-atlas/internal/analytics/models"
)

// BuildReport assembles the downloadable platform report as a complete HTML
// document. It is a pure formatting function; the caller supplies the
// report identifier and timestamp.
func BuildReport(reportID string, generatedAt time.Time, stats models.PlatformStats, categories []models.CategoryStats, objects []models.ObjectStats) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<title>AstroAtlas Platform Report</title>\n")
	b.WriteString(reportStyles)
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, "<header>\n<h1>AstroAtlas Platform Report</h1>\n<p class=\"meta\">Report %s &middot; generated %s</p>\n</header>\n",
		html.EscapeString(reportID), generatedAt.Format("January 2, 2006 15:04"))

	b.WriteString("<section class=\"stats\">\n<h2>Platform Overview</h2>\n<div class=\"grid\">\n")
	writeStatCard(&b, "Total Objects", fmt.Sprintf("%d", stats.TotalObjects))
	writeStatCard(&b, "Total Views", fmt.Sprintf("%d", stats.TotalViews))
	writeStatCard(&b, "Total Favorites", fmt.Sprintf("%d", stats.TotalFavorites))
	writeStatCard(&b, "Active Users", fmt.Sprintf("%d", stats.ActiveUsers))
	writeStatCard(&b, "Avg Views / Object", fmt.Sprintf("%d", stats.AvgViewsPerObject))
	writeStatCard(&b, "Engagement Rate", fmt.Sprintf("%.2f%%", stats.EngagementRate))
	b.WriteString("</div>\n</section>\n")

	b.WriteString("<section class=\"categories\">\n<h2>Category Distribution</h2>\n<ul>\n")
	for _, cat := range categories {
		fmt.Fprintf(&b, "<li><span class=\"name\">%s</span> <span class=\"views\">%d views</span> <span class=\"share\">%d%%</span> <span class=\"count\">%d objects</span></li>\n",
			html.EscapeString(cat.Name), cat.Value, cat.Percentage, cat.Count)
	}
	b.WriteString("</ul>\n</section>\n")

	b.WriteString("<section class=\"objects\">\n<h2>Top Objects</h2>\n<table>\n")
	b.WriteString("<tr><th>Name</th><th>Category</th><th>Views</th><th>Favorites</th><th>Engagement</th></tr>\n")
	for i, obj := range objects {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td>%.1f%%</td></tr>\n",
			html.EscapeString(obj.Name), html.EscapeString(obj.Category), obj.Views, obj.Favorites, obj.EngagementRate)
	}
	b.WriteString("</table>\n</section>\n")

	b.WriteString("<footer>\n<p>Generated by AstroAtlas Analytics</p>\n</footer>\n")
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

func writeStatCard(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<div class=\"card\"><div class=\"label\">%s</div><div class=\"value\">%s</div></div>\n",
		html.EscapeString(label), html.EscapeString(value))
}

const reportStyles = `<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; color: #1e1b4b; }
  header h1 { margin-bottom: 0.25rem; }
  .meta { color: #6b7280; }
  .grid { display: flex; flex-wrap: wrap; gap: 1rem; }
  .card { border: 1px solid #e5e7eb; border-radius: 8px; padding: 1rem; min-width: 10rem; }
  .card .label { color: #6b7280; font-size: 0.8rem; }
  .card .value { font-size: 1.5rem; font-weight: 600; }
  .categories ul { list-style: none; padding: 0; }
  .categories li { padding: 0.5rem 0; border-bottom: 1px solid #e5e7eb; }
  .categories .name { font-weight: 600; margin-right: 1rem; }
  table { border-collapse: collapse; width: 100%; }
  th, td { text-align: left; padding: 0.5rem; border-bottom: 1px solid #e5e7eb; }
</style>
`
