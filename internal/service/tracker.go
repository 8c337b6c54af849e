package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/domain"
	"github.com/pawarnirmal/portfolio/internal/repository"
)

const (
	maxUserAgent  = 512
	recordTimeout = 5 * time.Second
)

// Tracker records page views with the client address replaced by a salted hash.
type Tracker struct {
	visitors *repository.VisitorRepository
	salt     string
	log      *zap.Logger
	wg       sync.WaitGroup
	now      func() time.Time
}

// NewTracker creates a Tracker. An empty salt is replaced by a random one.
func NewTracker(visitors *repository.VisitorRepository, salt string, log *zap.Logger) (*Tracker, error) {
	if salt == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
		salt = hex.EncodeToString(b)
	}
	return &Tracker{visitors: visitors, salt: salt, log: log, now: time.Now}, nil
}

// Hash returns the first 16 hex characters of sha256(ip + salt). The same
// address always maps to the same hash for a given salt.
func (t *Tracker) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Track records a view in the background so the request is never held up.
func (t *Tracker) Track(ip, userAgent, path string) {
	v := domain.VisitorMetric{
		HashedIP:  t.Hash(ip),
		UserAgent: truncate(userAgent, maxUserAgent),
		Path:      path,
		Timestamp: t.now().UTC(),
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := t.visitors.Record(ctx, v); err != nil {
			t.log.Error("record visitor", zap.String("path", v.Path), zap.Error(err))
		}
	}()
}

// Wait blocks until all pending records are written.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// Cleanup deletes visitor rows older than retention.
func (t *Tracker) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := t.now().Add(-retention)
	n, err := t.visitors.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	if n > 0 {
		t.log.Info("privacy cleanup removed visitor records",
			zap.Int64("deleted", n),
			zap.Time("cutoff", cutoff))
	}
	return n, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
