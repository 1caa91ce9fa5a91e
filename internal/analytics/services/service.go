package services

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"astro-atlas/internal/analytics/models"
	favservices "astro-atlas/internal/favorites/services"
	objservices "astro-atlas/internal/objects/services"
	"astro-atlas/pkg/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// lastReportKey is where the most recent report's metadata is kept in Redis.
const lastReportKey = "analytics:report:last"

// Service derives read-only analytics over the catalog and favorites and
// owns the activity log.
type Service struct {
	repo      *Repository
	objects   *objservices.Service
	favorites *favservices.Service
	redis     *database.Redis
}

func NewService(db *mongo.Database, objects *objservices.Service, favorites *favservices.Service, redis *database.Redis) *Service {
	return &Service{
		repo:      NewRepository(db),
		objects:   objects,
		favorites: favorites,
		redis:     redis,
	}
}

// InitializeModule declares log indexes and reports the last generated
// report, when Redis remembers one.
func (s *Service) InitializeModule(ctx context.Context) error {
	if err := s.repo.CreateIndexes(ctx); err != nil {
		return err
	}

	if s.redis != nil {
		var last models.ReportInfo
		if err := s.redis.GetJSON(ctx, lastReportKey, &last); err == nil {
			slog.Info("Last platform report", "report_id", last.ReportID, "generated_at", last.GeneratedAt)
		}
	}
	return nil
}

// loadRecords assembles the derivation input. Views and per-object favorite
// counts come from the favorites collection, matched to catalog entries by
// name (the schemas share no foreign key).
func (s *Service) loadRecords(ctx context.Context) ([]ObjectRecord, int, error) {
	objects, err := s.objects.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	favorites, err := s.favorites.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	type favInfo struct {
		views int
		count int
	}
	byName := map[string]*favInfo{}
	for _, f := range favorites {
		key := strings.ToLower(f.Name)
		info, ok := byName[key]
		if !ok {
			info = &favInfo{}
			byName[key] = info
		}
		info.views += f.Views
		info.count++
	}

	records := make([]ObjectRecord, 0, len(objects))
	for _, obj := range objects {
		record := ObjectRecord{
			ID:          obj.ID.Hex(),
			Name:        obj.Name,
			Category:    obj.Category,
			Description: obj.Description,
		}
		if info, ok := byName[strings.ToLower(obj.Name)]; ok {
			record.Views = info.views
			record.Favorites = info.count
		}
		records = append(records, record)
	}

	return records, len(favorites), nil
}

// Stats returns the platform aggregate.
func (s *Service) Stats(ctx context.Context) (models.PlatformStats, error) {
	records, totalFavorites, err := s.loadRecords(ctx)
	if err != nil {
		return models.PlatformStats{}, err
	}
	return ComputeStats(records, totalFavorites), nil
}

// Categories returns the per-category aggregation.
func (s *Service) Categories(ctx context.Context) ([]models.CategoryStats, error) {
	records, _, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateCategories(records), nil
}

// Trends returns the synthetic series for a time range.
func (s *Service) Trends(ctx context.Context, timeRange string) ([]models.TrendPoint, error) {
	records, _, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(records, 0)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return TrendSeries(rng, timeRange, stats.TotalViews), nil
}

// Report generates the downloadable HTML report and remembers its metadata
// in Redis, best effort.
func (s *Service) Report(ctx context.Context) (string, models.ReportInfo, error) {
	records, totalFavorites, err := s.loadRecords(ctx)
	if err != nil {
		return "", models.ReportInfo{}, err
	}

	stats := ComputeStats(records, totalFavorites)
	categories := AggregateCategories(records)
	ranked := RankObjects(records)

	info := models.ReportInfo{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now(),
		Objects:     len(records),
	}
	doc := BuildReport(info.ReportID, info.GeneratedAt, stats, categories, ranked)

	if s.redis != nil {
		if err := s.redis.SetJSON(ctx, lastReportKey, info, 24*time.Hour); err != nil {
			slog.Warn("Failed to record report metadata", "error", err)
		}
	}
	return doc, info, nil
}

// RecordActivity appends one activity log entry. Failures are logged and
// swallowed so resource mutations never fail on the audit trail.
func (s *Service) RecordActivity(ctx context.Context, userID *primitive.ObjectID, action, details string) {
	entry := &models.ActivityLog{UserID: userID, Action: action, Details: details}
	if err := s.repo.Insert(ctx, entry); err != nil {
		slog.Error("Failed to record activity", "action", action, "error", err)
	}
}

// Logs returns the most recent activity entries, newest first.
func (s *Service) Logs(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.List(ctx, limit)
}

// PruneLogs removes entries older than the retention window.
func (s *Service) PruneLogs(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.PruneBefore(ctx, time.Now().Add(-retention))
}
