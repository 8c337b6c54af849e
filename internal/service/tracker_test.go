package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/config"
	"github.com/pawarnirmal/portfolio/internal/content"
	"github.com/pawarnirmal/portfolio/internal/domain"
)

func TestTracker_Hash(t *testing.T) {
	a, err := NewTracker(nil, "salt-a", zap.NewNop())
	require.NoError(t, err)
	b, err := NewTracker(nil, "salt-b", zap.NewNop())
	require.NoError(t, err)

	h := a.Hash("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, a.Hash("203.0.113.7"))
	assert.NotEqual(t, h, a.Hash("203.0.113.8"))
	assert.NotEqual(t, h, b.Hash("203.0.113.7"))
}

func TestTracker_RandomSalt(t *testing.T) {
	a, err := NewTracker(nil, "", zap.NewNop())
	require.NoError(t, err)
	b, err := NewTracker(nil, "", zap.NewNop())
	require.NoError(t, err)

	assert.NotEqual(t, a.Hash("203.0.113.7"), b.Hash("203.0.113.7"))
}

func TestTracker_TrackAndCleanup(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	tr, err := NewTracker(r.visitors, "salt", zap.NewNop())
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return now.Add(-400 * 24 * time.Hour) }
	tr.Track("198.51.100.1", "old-agent", "/")
	tr.now = func() time.Time { return now }
	tr.Track("198.51.100.2", "new-agent", "/")
	tr.Wait()

	recent, err := r.visitors.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, tr.Hash("198.51.100.2"), recent[0].HashedIP)
	assert.NotContains(t, recent[0].HashedIP, "198.51")

	deleted, err := tr.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "curl/8.0", 512, "curl/8.0"},
		{"ascii cut", "abcdef", 4, "abcd"},
		{"inside two byte rune", "abé", 3, "ab"},
		{"inside three byte rune", "a€", 2, "a"},
		{"on boundary", "a€b", 4, "a€"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestTracker_TrackTruncatesUserAgent(t *testing.T) {
	r := setupRepos(t)
	tr, err := NewTracker(r.visitors, "salt", zap.NewNop())
	require.NoError(t, err)

	ua := "a" + strings.Repeat("é", maxUserAgent)
	tr.Track("198.51.100.9", ua, "/")
	tr.Wait()

	recent, err := r.visitors.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, utf8.ValidString(recent[0].UserAgent))
	assert.Len(t, recent[0].UserAgent, maxUserAgent-1)
}

func TestLinkService(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewLinkService(content.NewStore(content.Default()), r.links, zap.NewNop())

	target, err := svc.Project(ctx, "osint-case-toolkit")
	require.NoError(t, err)
	assert.Equal(t, "/#", target, "in-page anchors resolve against the home page")

	target, err = svc.Social(ctx, "github")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/", target)

	_, err = svc.Project(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	_, err = svc.Social(ctx, "myspace")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)

	links, clicks, err := r.links.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), links)
	assert.Equal(t, int64(2), clicks)
}

type staticCache domain.CacheStats

func (s staticCache) Stats() domain.CacheStats { return domain.CacheStats(s) }

func TestStatsService(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, r.visitors.Record(ctx, domain.VisitorMetric{HashedIP: "a", Path: "/", Timestamp: now}))
	require.NoError(t, r.links.Click(ctx, "social:github", "https://github.com/", now))
	queue(t, r, "m1", now)

	store := content.NewStore(content.Default())
	svc := NewStatsService(r.visitors, r.links, r.messages, staticCache{Hits: 3, Renders: 1}, store)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalVisitors)
	assert.Equal(t, int64(1), stats.UniqueVisitors)
	assert.Equal(t, int64(1), stats.TotalClicks)
	require.Len(t, stats.TopLinks, 1)
	assert.Equal(t, "social:github", stats.TopLinks[0].Code)
	assert.Len(t, stats.RecentVisitors, 1)
	assert.Equal(t, int64(1), stats.Messages[domain.MessageStatusPending])
	assert.Equal(t, int64(3), stats.Cache.Hits)
	assert.Equal(t, store.Version(), stats.ContentVersion)
}

func TestAdminAuth(t *testing.T) {
	auth, err := NewAdminAuth(config.AdminConfig{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	_, err = auth.Login("admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = auth.Login("root", "s3cret")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	token, err := auth.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.True(t, auth.Verify(token))
	assert.False(t, auth.Verify(""))
	assert.False(t, auth.Verify(token[:63]+"x"))

	empty, err := NewAdminAuth(config.AdminConfig{Username: "admin"})
	require.NoError(t, err)
	_, err = empty.Login("admin", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "an unset password never matches")
}
