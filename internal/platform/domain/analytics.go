package domain

import "time"

// Metric names stored in analytics_metrics.
const (
	MetricTotalUsers      = "total_users"
	MetricActiveFarmers   = "active_farmers"
	MetricDataAmbassadors = "data_ambassadors"
)

type AnalyticsMetric struct {
	Name       string
	Value      int64
	RecordedAt time.Time
}

// UserCounts are live counts over active users.
type UserCounts struct {
	TotalUsers      int64
	ActiveFarmers   int64
	DataAmbassadors int64
}

type GrowthMetrics struct {
	UsersGrowth       string
	FarmersGrowth     string
	AmbassadorsGrowth string
}

// StaticGrowthMetrics are display strings, not computed trends.
var StaticGrowthMetrics = GrowthMetrics{
	UsersGrowth:       "+12% from last month",
	FarmersGrowth:     "+8% from last month",
	AmbassadorsGrowth: "+15% from last month",
}

type DashboardSummary struct {
	UserCounts
	GrowthMetrics GrowthMetrics
}
