package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pawarnirmal/portfolio/internal/database"
	"github.com/pawarnirmal/portfolio/internal/domain"
)

// LinkRepository counts click-throughs on outbound links.
type LinkRepository struct {
	db *database.DB
}

// NewLinkRepository creates a new LinkRepository.
func NewLinkRepository(db *database.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Click records one click on code, creating the row on first use. The target is
// refreshed every time because content reloads may change it.
func (r *LinkRepository) Click(ctx context.Context, code, target string, at time.Time) error {
	at = at.UTC()
	query, args, err := r.db.Builder().
		Insert("links").
		Columns("code", "target_url", "clicks", "created_at", "last_click").
		Values(code, target, 1, at, at).
		Suffix("ON CONFLICT (code) DO UPDATE SET clicks = links.clicks + 1, target_url = excluded.target_url, last_click = excluded.last_click").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.db.SQL().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("record click on %s: %w", code, err)
	}
	return nil
}

// Top returns the most clicked links.
func (r *LinkRepository) Top(ctx context.Context, limit uint64) ([]domain.LinkStat, error) {
	return r.list(ctx, limit, "clicks DESC", "created_at DESC")
}

// All returns every link, newest first.
func (r *LinkRepository) All(ctx context.Context) ([]domain.LinkStat, error) {
	return r.list(ctx, 0, "created_at DESC", "code")
}

// Totals returns the number of tracked links and their summed clicks.
func (r *LinkRepository) Totals(ctx context.Context) (links, clicks int64, err error) {
	query, args, err := r.db.Builder().
		Select("COUNT(*)", "COALESCE(SUM(clicks), 0)").
		From("links").
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build query: %w", err)
	}
	if err := r.db.SQL().QueryRowContext(ctx, query, args...).Scan(&links, &clicks); err != nil {
		return 0, 0, fmt.Errorf("count links: %w", err)
	}
	return links, clicks, nil
}

func (r *LinkRepository) list(ctx context.Context, limit uint64, orderBy ...string) ([]domain.LinkStat, error) {
	b := r.db.Builder().
		Select("code", "target_url", "clicks", "created_at", "last_click").
		From("links").
		OrderBy(orderBy...)
	if limit > 0 {
		b = b.Limit(limit)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.SQL().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	links := []domain.LinkStat{}
	for rows.Next() {
		var (
			l    domain.LinkStat
			last sql.NullTime
		)
		if err := rows.Scan(&l.Code, &l.TargetURL, &l.Clicks, &l.CreatedAt, &last); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		if last.Valid {
			l.LastClick = last.Time
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate links: %w", err)
	}
	return links, nil
}
