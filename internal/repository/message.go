package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pawarnirmal/portfolio/internal/database"
	"github.com/pawarnirmal/portfolio/internal/domain"
)

var messageColumns = []string{
	"id", "name", "email", "body", "status", "attempts", "last_error",
	"created_at", "next_attempt_at", "sent_at",
}

// MessageRepository is the contact message queue.
type MessageRepository struct {
	db *database.DB
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *database.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new message.
func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	query, args, err := r.db.Builder().
		Insert("messages").
		Columns("id", "name", "email", "body", "status", "attempts", "last_error", "created_at", "next_attempt_at").
		Values(m.ID, m.Name, m.Email, m.Body, string(m.Status), m.Attempts, m.LastError, m.CreatedAt.UTC(), m.NextAttemptAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.db.SQL().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// GetByID retrieves a message by ID.
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	query, args, err := r.db.Builder().
		Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	m, err := scanMessage(r.db.SQL().QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("query message: %w", err)
	}
	return m, nil
}

// List returns messages newest first, optionally filtered by status.
func (r *MessageRepository) List(ctx context.Context, status domain.MessageStatus, limit uint64) ([]domain.Message, error) {
	b := r.db.Builder().
		Select(messageColumns...).
		From("messages").
		OrderBy("created_at DESC").
		Limit(limit)
	if status != "" {
		b = b.Where(sq.Eq{"status": string(status)})
	}
	return r.query(ctx, b)
}

// DuePending returns pending messages whose next attempt is at or before now.
func (r *MessageRepository) DuePending(ctx context.Context, now time.Time, limit uint64) ([]domain.Message, error) {
	b := r.db.Builder().
		Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"status": string(domain.MessageStatusPending)}).
		Where(sq.LtOrEq{"next_attempt_at": now.UTC()}).
		OrderBy("next_attempt_at", "created_at").
		Limit(limit)
	return r.query(ctx, b)
}

// Claim pushes a due message's next attempt to leaseUntil so that a second
// delivery process skips it. It reports whether this caller won the claim.
func (r *MessageRepository) Claim(ctx context.Context, id string, now, leaseUntil time.Time) (bool, error) {
	query, args, err := r.db.Builder().
		Update("messages").
		Set("next_attempt_at", leaseUntil.UTC()).
		Where(sq.Eq{"id": id, "status": string(domain.MessageStatusPending)}).
		Where(sq.LtOrEq{"next_attempt_at": now.UTC()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}
	return r.execOne(ctx, query, args)
}

// MarkSent records a successful delivery.
func (r *MessageRepository) MarkSent(ctx context.Context, id string, attempts int, at time.Time) error {
	return r.update(ctx, id, map[string]any{
		"status":     string(domain.MessageStatusSent),
		"attempts":   attempts,
		"last_error": "",
		"sent_at":    at.UTC(),
	})
}

// MarkRetry records a failed attempt and schedules the next one.
func (r *MessageRepository) MarkRetry(ctx context.Context, id string, attempts int, lastErr string, next time.Time) error {
	return r.update(ctx, id, map[string]any{
		"attempts":        attempts,
		"last_error":      lastErr,
		"next_attempt_at": next.UTC(),
	})
}

// MarkFailed gives up on a message.
func (r *MessageRepository) MarkFailed(ctx context.Context, id string, attempts int, lastErr string) error {
	return r.update(ctx, id, map[string]any{
		"status":     string(domain.MessageStatusFailed),
		"attempts":   attempts,
		"last_error": lastErr,
	})
}

// Requeue resets a message to pending with a fresh attempt budget.
func (r *MessageRepository) Requeue(ctx context.Context, id string, at time.Time) error {
	return r.update(ctx, id, map[string]any{
		"status":          string(domain.MessageStatusPending),
		"attempts":        0,
		"next_attempt_at": at.UTC(),
	})
}

// CountByStatus returns the number of messages in each status present.
func (r *MessageRepository) CountByStatus(ctx context.Context) (map[domain.MessageStatus]int64, error) {
	query, args, err := r.db.Builder().
		Select("status", "COUNT(*)").
		From("messages").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.SQL().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}
	defer rows.Close()

	counts := map[domain.MessageStatus]int64{}
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[domain.MessageStatus(status)] = n
	}
	return counts, rows.Err()
}

func (r *MessageRepository) update(ctx context.Context, id string, set map[string]any) error {
	query, args, err := r.db.Builder().
		Update("messages").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	ok, err := r.execOne(ctx, query, args)
	if err != nil {
		return fmt.Errorf("update message %s: %w", id, err)
	}
	if !ok {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) execOne(ctx context.Context, query string, args []any) (bool, error) {
	res, err := r.db.SQL().ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *MessageRepository) query(ctx context.Context, b sq.SelectBuilder) ([]domain.Message, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.SQL().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	msgs := []domain.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return msgs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (*domain.Message, error) {
	var (
		m      domain.Message
		status string
		sentAt sql.NullTime
	)
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Body,
		&status,
		&m.Attempts,
		&m.LastError,
		&m.CreatedAt,
		&m.NextAttemptAt,
		&sentAt,
	)
	if err != nil {
		return nil, err
	}
	m.Status = domain.MessageStatus(status)
	if sentAt.Valid {
		t := sentAt.Time
		m.SentAt = &t
	}
	return &m, nil
}
