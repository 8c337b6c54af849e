package domain

import "time"

// VisitorMetric is a single page view. The client address is never stored raw.
type VisitorMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// LinkStat counts click-throughs on an outbound link (project card or social link).
type LinkStat struct {
	Code      string    `json:"code"`
	TargetURL string    `json:"target_url"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
	LastClick time.Time `json:"last_click"`
}

// VisitorCounts aggregates visitor rows for the admin dashboard.
type VisitorCounts struct {
	Total    int64 `json:"total"`
	Unique   int64 `json:"unique"`
	Today    int64 `json:"today"`
	ThisWeek int64 `json:"this_week"`
}

// AdminStats is the dashboard and export payload.
type AdminStats struct {
	TotalVisitors    int64                   `json:"total_visitors"`
	UniqueVisitors   int64                   `json:"unique_visitors"`
	VisitorsToday    int64                   `json:"visitors_today"`
	VisitorsThisWeek int64                   `json:"visitors_this_week"`
	TotalLinks       int64                   `json:"total_links"`
	TotalClicks      int64                   `json:"total_clicks"`
	TopLinks         []LinkStat              `json:"top_links"`
	RecentVisitors   []VisitorMetric         `json:"recent_visitors"`
	Messages         map[MessageStatus]int64 `json:"messages"`
	Cache            CacheStats              `json:"cache"`
	ContentVersion   uint64                  `json:"content_version"`
}

// CacheStats reports render cache activity.
type CacheStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Renders int64 `json:"renders"`
}
