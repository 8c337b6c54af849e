package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pawarnirmal/portfolio/internal/database"
	"github.com/pawarnirmal/portfolio/internal/domain"
)

// VisitorRepository stores hashed page views.
type VisitorRepository struct {
	db *database.DB
}

// NewVisitorRepository creates a new VisitorRepository.
func NewVisitorRepository(db *database.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

// Record inserts one page view.
func (r *VisitorRepository) Record(ctx context.Context, v domain.VisitorMetric) error {
	query, args, err := r.db.Builder().
		Insert("visitors").
		Columns("hashed_ip", "user_agent", "path", "timestamp").
		Values(v.HashedIP, v.UserAgent, v.Path, v.Timestamp.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.db.SQL().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

// Counts returns totals relative to now: all time, distinct hashes, since local
// midnight and over the last seven days.
func (r *VisitorRepository) Counts(ctx context.Context, now time.Time) (domain.VisitorCounts, error) {
	var counts domain.VisitorCounts

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).UTC()
	weekAgo := now.Add(-7 * 24 * time.Hour).UTC()

	query, args, err := r.db.Builder().
		Select("COUNT(*)", "COUNT(DISTINCT hashed_ip)").
		From("visitors").
		ToSql()
	if err != nil {
		return counts, fmt.Errorf("build query: %w", err)
	}
	if err := r.db.SQL().QueryRowContext(ctx, query, args...).Scan(&counts.Total, &counts.Unique); err != nil {
		return counts, fmt.Errorf("count visitors: %w", err)
	}

	if counts.Today, err = r.countSince(ctx, midnight); err != nil {
		return counts, err
	}
	if counts.ThisWeek, err = r.countSince(ctx, weekAgo); err != nil {
		return counts, err
	}
	return counts, nil
}

func (r *VisitorRepository) countSince(ctx context.Context, since time.Time) (int64, error) {
	query, args, err := r.db.Builder().
		Select("COUNT(*)").
		From("visitors").
		Where(sq.GtOrEq{"timestamp": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int64
	if err := r.db.SQL().QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count visitors since %s: %w", since.Format(time.RFC3339), err)
	}
	return n, nil
}

// Recent returns the newest page views first.
func (r *VisitorRepository) Recent(ctx context.Context, limit uint64) ([]domain.VisitorMetric, error) {
	query, args, err := r.db.Builder().
		Select("id", "hashed_ip", "user_agent", "path", "timestamp").
		From("visitors").
		OrderBy("timestamp DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.SQL().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	visitors := []domain.VisitorMetric{}
	for rows.Next() {
		var v domain.VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		visitors = append(visitors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visitors: %w", err)
	}
	return visitors, nil
}

// DeleteOlderThan removes page views recorded before cutoff and reports how many.
func (r *VisitorRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := r.db.Builder().
		Delete("visitors").
		Where(sq.Lt{"timestamp": cutoff.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	res, err := r.db.SQL().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete visitors: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
