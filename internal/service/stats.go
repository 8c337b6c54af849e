package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pawarnirmal/portfolio/internal/domain"
	"github.com/pawarnirmal/portfolio/internal/repository"
)

const (
	topLinksLimit       = 10
	recentVisitorsLimit = 20
)

// CacheStatter reports render cache counters.
type CacheStatter interface {
	Stats() domain.CacheStats
}

// Versioner reports the current content version.
type Versioner interface {
	Version() uint64
}

// StatsService builds the admin dashboard aggregate.
type StatsService struct {
	visitors *repository.VisitorRepository
	links    *repository.LinkRepository
	messages *repository.MessageRepository
	cache    CacheStatter
	content  Versioner
	now      func() time.Time
}

// NewStatsService creates a new StatsService. cache and content may be nil.
func NewStatsService(
	visitors *repository.VisitorRepository,
	links *repository.LinkRepository,
	messages *repository.MessageRepository,
	cache CacheStatter,
	content Versioner,
) *StatsService {
	return &StatsService{
		visitors: visitors,
		links:    links,
		messages: messages,
		cache:    cache,
		content:  content,
		now:      time.Now,
	}
}

// Stats collects visitor counts, link clicks, message queue state and cache counters.
func (s *StatsService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	counts, err := s.visitors.Counts(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("visitor counts: %w", err)
	}

	stats := &domain.AdminStats{
		TotalVisitors:    counts.Total,
		UniqueVisitors:   counts.Unique,
		VisitorsToday:    counts.Today,
		VisitorsThisWeek: counts.ThisWeek,
	}

	if stats.TotalLinks, stats.TotalClicks, err = s.links.Totals(ctx); err != nil {
		return nil, fmt.Errorf("link totals: %w", err)
	}
	if stats.TopLinks, err = s.links.Top(ctx, topLinksLimit); err != nil {
		return nil, fmt.Errorf("top links: %w", err)
	}
	if stats.RecentVisitors, err = s.visitors.Recent(ctx, recentVisitorsLimit); err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	if stats.Messages, err = s.messages.CountByStatus(ctx); err != nil {
		return nil, fmt.Errorf("message counts: %w", err)
	}

	if s.cache != nil {
		stats.Cache = s.cache.Stats()
	}
	if s.content != nil {
		stats.ContentVersion = s.content.Version()
	}
	return stats, nil
}
