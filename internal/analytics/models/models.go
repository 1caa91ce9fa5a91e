package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogsCollection is the MongoDB collection name for activity logs
const LogsCollection = "logs"

// ActivityLog records a single platform action for the analytics feed.
type ActivityLog struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	UserID    *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Action    string              `bson:"action" json:"action"`
	Details   string              `bson:"details,omitempty" json:"details,omitempty"`
	Timestamp time.Time           `bson:"timestamp" json:"timestamp"`
}

// PlatformStats is the aggregate view over the whole catalog.
type PlatformStats struct {
	TotalObjects      int     `json:"totalObjects"`
	TotalViews        int     `json:"totalViews"`
	TotalFavorites    int     `json:"totalFavorites"`
	ActiveUsers       int     `json:"activeUsers"`
	AvgViewsPerObject int     `json:"avgViewsPerObject"`
	EngagementRate    float64 `json:"engagementRate"`
	GrowthRate        float64 `json:"growthRate"`
}

// ObjectStats is the per-object analytics row, ranked by views.
type ObjectStats struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"type"`
	Views          int     `json:"views"`
	Favorites      int     `json:"favorites"`
	Description    string  `json:"description,omitempty"`
	EngagementRate float64 `json:"engagementRate"`
}

// CategoryStats aggregates one category's share of the platform.
type CategoryStats struct {
	Name              string  `json:"name"`
	Value             int     `json:"value"`
	Count             int     `json:"count"`
	Favorites         int     `json:"favorites"`
	Percentage        int     `json:"percentage"`
	AvgViewsPerObject int     `json:"avgViewsPerObject"`
	EngagementRate    float64 `json:"engagementRate"`
}

// TrendPoint is one entry of the synthetic trend series.
type TrendPoint struct {
	Period       string `json:"period"`
	Views        int    `json:"views"`
	Interactions int    `json:"interactions"`
	Favorites    int    `json:"favorites"`
	Users        int    `json:"users"`
}

// ReportInfo describes the most recently generated report.
type ReportInfo struct {
	ReportID    string    `json:"reportId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Objects     int       `json:"objects"`
}
