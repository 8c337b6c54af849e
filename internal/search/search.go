// Package search indexes the portfolio for full-text lookup. The index lives in
// memory and is rebuilt from scratch whenever the content changes.
package search

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/content"
)

// Kind is the type of indexed document.
type Kind string

const (
	KindProject       Kind = "project"
	KindSkillGroup    Kind = "skill"
	KindCertification Kind = "certification"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Hit is a search result. Anchor is the in-page target to scroll to.
type Hit struct {
	Kind   Kind    `json:"kind"`
	Title  string  `json:"title"`
	Anchor string  `json:"anchor"`
	Score  float64 `json:"score"`
}

type document struct {
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Tags   string `json:"tags"`
	Anchor string `json:"anchor"`
}

// Index is safe for concurrent use.
type Index struct {
	mu    sync.RWMutex
	index bleve.Index
	log   *zap.Logger
}

// New builds an index over p.
func New(p *content.Portfolio, log *zap.Logger) (*Index, error) {
	if log == nil {
		log = zap.NewNop()
	}
	idx, err := build(p)
	if err != nil {
		return nil, err
	}
	return &Index{index: idx, log: log}, nil
}

// Attach rebuilds the index on every content replace.
func (i *Index) Attach(store *content.Store) {
	store.Subscribe(func(p *content.Portfolio, version uint64) {
		if err := i.Rebuild(p); err != nil {
			i.log.Error("rebuild search index", zap.Uint64("version", version), zap.Error(err))
		}
	})
}

// Rebuild swaps in a fresh index for p.
func (i *Index) Rebuild(p *content.Portfolio) error {
	idx, err := build(p)
	if err != nil {
		return err
	}
	i.mu.Lock()
	old := i.index
	i.index = idx
	i.mu.Unlock()
	return old.Close()
}

// Search runs a match query over titles, bodies and tags.
func (i *Index) Search(q string, limit int) ([]Hit, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Hit{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	query := bleve.NewDisjunctionQuery(
		boosted(bleve.NewMatchQuery(q), "title", 3),
		boosted(bleve.NewMatchQuery(q), "tags", 2),
		boosted(bleve.NewMatchQuery(q), "body", 1),
		boosted(bleve.NewPrefixQuery(strings.ToLower(q)), "title", 1),
	)
	req := bleve.NewSearchRequestOptions(query, limit, 0, false)
	req.Fields = []string{"kind", "title", "anchor"}

	i.mu.RLock()
	res, err := i.index.Search(req)
	i.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q, err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, Hit{
			Kind:   Kind(field(h.Fields, "kind")),
			Title:  field(h.Fields, "title"),
			Anchor: field(h.Fields, "anchor"),
			Score:  h.Score,
		})
	}
	return hits, nil
}

// Close releases the index.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.index.Close()
}

type fieldQuery interface {
	SetField(string)
	SetBoost(float64)
}

func boosted[Q fieldQuery](q Q, field string, boost float64) Q {
	q.SetField(field)
	q.SetBoost(boost)
	return q
}

func field(fields map[string]any, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}

func build(p *content.Portfolio) (bleve.Index, error) {
	idx, err := bleve.NewMemOnly(indexMapping())
	if err != nil {
		return nil, fmt.Errorf("create search index: %w", err)
	}
	if err := fill(idx, p); err != nil {
		idx.Close()
		return nil, fmt.Errorf("index portfolio: %w", err)
	}
	return idx, nil
}

// fill indexes one document per record. Skill groups and certifications are
// keyed by position since their titles need not be unique.
func fill(idx bleve.Index, p *content.Portfolio) error {
	batch := idx.NewBatch()
	for _, pr := range p.Projects {
		doc := document{
			Kind:   string(KindProject),
			Title:  pr.Title,
			Body:   pr.Desc,
			Tags:   strings.Join(pr.Tags, " "),
			Anchor: "#project-" + pr.Slug,
		}
		if err := batch.Index("project:"+pr.Slug, doc); err != nil {
			return err
		}
	}
	for i, sg := range p.Skills {
		doc := document{
			Kind:   string(KindSkillGroup),
			Title:  sg.Title,
			Tags:   strings.Join(sg.Items, " "),
			Anchor: "#skills",
		}
		if err := batch.Index("skill:"+strconv.Itoa(i), doc); err != nil {
			return err
		}
	}
	for i, c := range p.Certifications {
		doc := document{
			Kind:   string(KindCertification),
			Title:  c.Name,
			Body:   c.Issuer + " " + c.Year,
			Anchor: "#certs",
		}
		if err := batch.Index("cert:"+strconv.Itoa(i), doc); err != nil {
			return err
		}
	}
	return idx.Batch(batch)
}

func indexMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Analyzer = standard.Name
	text.Store = true

	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name
	exact.Store = true

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", text)
	doc.AddFieldMappingsAt("body", text)
	doc.AddFieldMappingsAt("tags", text)
	doc.AddFieldMappingsAt("kind", exact)
	doc.AddFieldMappingsAt("anchor", exact)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	m.DefaultAnalyzer = standard.Name
	return m
}
