// Package render turns the live portfolio into a ready-to-serve HTML page and
// caches it. The cache key is (content version, footer year): a content reload
// or a new calendar year produces a fresh render, everything else is a hit.
package render

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pawarnirmal/portfolio/internal/content"
	"github.com/pawarnirmal/portfolio/internal/domain"
	"github.com/pawarnirmal/portfolio/internal/view"
)

// Page is a rendered home page.
type Page struct {
	Body       []byte
	ETag       string
	Version    uint64
	Year       int
	RenderedAt time.Time
}

// Options tune what the rendered page contains.
type Options struct {
	ContactForm bool
	DirectLinks bool
	Now         func() time.Time
	Logger      *zap.Logger
}

// Cache holds at most one rendered page.
type Cache struct {
	store *content.Store
	opts  Options

	mu   sync.RWMutex
	page *Page

	group singleflight.Group

	hits    atomic.Int64
	misses  atomic.Int64
	renders atomic.Int64
}

// NewCache creates a cache over store and invalidates it on every content replace.
func NewCache(store *content.Store, opts Options) *Cache {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	c := &Cache{store: store, opts: opts}
	store.Subscribe(func(_ *content.Portfolio, version uint64) {
		c.Invalidate()
		opts.Logger.Debug("render cache invalidated", zap.Uint64("version", version))
	})
	return c
}

// Get returns the page for the current content version, rendering it if needed.
// Concurrent misses share one render.
func (c *Cache) Get(ctx context.Context) (*Page, error) {
	p, version := c.store.Get()
	year := c.opts.Now().Year()

	if page := c.lookup(version, year); page != nil {
		c.hits.Add(1)
		return page, nil
	}
	c.misses.Add(1)

	key := strconv.FormatUint(version, 10) + "/" + strconv.Itoa(year)
	ch := c.group.DoChan(key, func() (any, error) {
		if page := c.lookup(version, year); page != nil {
			return page, nil
		}
		page, err := Build(p, version, year, c.opts)
		if err != nil {
			return nil, err
		}
		c.renders.Add(1)
		c.storePage(page)
		return page, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Page), nil
	}
}

// Invalidate drops the cached page.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.page = nil
	c.mu.Unlock()
}

// Stats reports cache activity since creation.
func (c *Cache) Stats() domain.CacheStats {
	return domain.CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Renders: c.renders.Load(),
	}
}

func (c *Cache) lookup(version uint64, year int) *Page {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.page != nil && c.page.Version == version && c.page.Year == year {
		return c.page
	}
	return nil
}

// storePage keeps page unless a newer version is already cached.
func (c *Cache) storePage(page *Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page != nil && c.page.Version > page.Version {
		return
	}
	c.page = page
}

// Build renders p without any caching.
func Build(p *content.Portfolio, version uint64, year int, opts Options) (*Page, error) {
	bio, err := p.BioHTML()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	node := view.Page(view.Model{
		Portfolio:   p,
		BioHTML:     bio,
		Year:        year,
		DirectLinks: opts.DirectLinks,
		ContactForm: opts.ContactForm,
	})
	if err := node.Render(&buf); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	sum := sha256.Sum256(buf.Bytes())
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	return &Page{
		Body:       buf.Bytes(),
		ETag:       `"` + hex.EncodeToString(sum[:16]) + `"`,
		Version:    version,
		Year:       year,
		RenderedAt: now(),
	}, nil
}
