package render

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawarnirmal/portfolio/internal/content"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

func newCache(t *testing.T) (*Cache, *content.Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := content.NewStore(content.Default())
	return NewCache(store, Options{Now: clock.Now, ContactForm: true}), store, clock
}

func TestCache_HitAfterFirstRender(t *testing.T) {
	c, _, _ := newCache(t)
	ctx := context.Background()

	first, err := c.Get(ctx)
	require.NoError(t, err)
	second, err := c.Get(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), c.Stats().Renders)
	assert.Equal(t, int64(1), c.Stats().Hits)
	assert.Equal(t, int64(1), c.Stats().Misses)
	assert.Contains(t, string(first.Body), "© 2025 Nirmal. All rights reserved.")
	assert.Regexp(t, `^"[0-9a-f]{32}"$`, first.ETag)
}

func TestCache_InvalidatedOnContentReplace(t *testing.T) {
	c, store, _ := newCache(t)
	ctx := context.Background()

	before, err := c.Get(ctx)
	require.NoError(t, err)

	next := content.Default()
	next.Profile.Headline = "Hello again"
	require.NoError(t, store.Replace(next))

	after, err := c.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), after.Version)
	assert.NotEqual(t, before.ETag, after.ETag)
	assert.Contains(t, string(after.Body), "Hello again")
	assert.Equal(t, int64(2), c.Stats().Renders)
}

func TestCache_YearRollover(t *testing.T) {
	c, _, clock := newCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx)
	require.NoError(t, err)

	clock.Set(time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC))
	page, err := c.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2026, page.Year)
	assert.Contains(t, string(page.Body), "© 2026 Nirmal.")
	assert.Equal(t, int64(2), c.Stats().Renders)
}

func TestCache_ConcurrentMissesRenderOnce(t *testing.T) {
	c, _, _ := newCache(t)

	var wg sync.WaitGroup
	etags := make([]string, 32)
	for i := range etags {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page, err := c.Get(context.Background())
			if assert.NoError(t, err) {
				etags[i] = page.ETag
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), c.Stats().Renders)
	for _, e := range etags {
		assert.Equal(t, etags[0], e)
	}
}

func TestCache_CancelledContext(t *testing.T) {
	c, _, _ := newCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Either the render finished first or the cancellation won; both are valid,
	// but a cancelled caller must never get a nil page without an error.
	page, err := c.Get(ctx)
	if err == nil {
		assert.NotNil(t, page)
	} else {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestBuild_DirectLinks(t *testing.T) {
	p := content.Default()
	p.Projects[0].Link = "https://example.com/phish"

	page, err := Build(p, 1, 2025, Options{DirectLinks: true})
	require.NoError(t, err)

	body := string(page.Body)
	assert.Contains(t, body, `href="https://example.com/phish"`)
	assert.NotContains(t, body, `href="/go/`)
	assert.NotContains(t, body, `hx-get="/contact-form"`)
}
