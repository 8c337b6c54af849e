package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/content"
	"github.com/pawarnirmal/portfolio/internal/domain"
	"github.com/pawarnirmal/portfolio/internal/repository"
)

// LinkService resolves counted outbound links against the live content.
type LinkService struct {
	store *content.Store
	links *repository.LinkRepository
	log   *zap.Logger
	now   func() time.Time
}

// NewLinkService creates a new LinkService.
func NewLinkService(store *content.Store, links *repository.LinkRepository, log *zap.Logger) *LinkService {
	return &LinkService{store: store, links: links, log: log, now: time.Now}
}

// Project returns the redirect target for a project card and counts the click.
// In-page anchors resolve to the home page with that fragment.
func (s *LinkService) Project(ctx context.Context, slug string) (string, error) {
	p, _ := s.store.Get()
	pr, ok := p.Project(slug)
	if !ok {
		return "", fmt.Errorf("%w: project %q", domain.ErrLinkNotFound, slug)
	}

	target := pr.Link
	if strings.HasPrefix(target, "#") {
		target = "/" + target
	}
	s.count(ctx, "project:"+slug, target)
	return target, nil
}

// Social returns the redirect target for a social link and counts the click.
func (s *LinkService) Social(ctx context.Context, name string) (string, error) {
	p, _ := s.store.Get()
	link, ok := p.Social(name)
	if !ok {
		return "", fmt.Errorf("%w: social %q", domain.ErrLinkNotFound, name)
	}

	s.count(ctx, "social:"+name, link.URL)
	return link.URL, nil
}

// count never fails the redirect; a lost click is only logged.
func (s *LinkService) count(ctx context.Context, code, target string) {
	if err := s.links.Click(ctx, code, target, s.now().UTC()); err != nil {
		s.log.Error("count link click", zap.String("code", code), zap.Error(err))
	}
}
