package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/newsrack-dev/newsrack/internal/domain"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
)

type NewspaperStorage interface {
	ListNewspapers(ctx context.Context) ([]domain.Newspaper, error)
	CreateNewspaper(ctx context.Context, slug, displayName string) (domain.Newspaper, error)
	DeleteNewspaper(ctx context.Context, slug string) error
}

// to mock service in tests
type NewspaperService interface {
	List(ctx context.Context) ([]domain.Newspaper, error)
	Create(ctx context.Context, slug, displayName string) (domain.Newspaper, error)
	Delete(ctx context.Context, slug string) error
}

type Newspaper struct {
	storage NewspaperStorage
}

func NewNewspaper(storage NewspaperStorage) NewspaperService {
	return &Newspaper{storage}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeSlug lowercases and hyphenates a newspaper identifier:
// "New Times" becomes "new-times".
func NormalizeSlug(slug string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(slug)), "-")
}

func (s *Newspaper) List(ctx context.Context) ([]domain.Newspaper, error) {
	return s.storage.ListNewspapers(ctx)
}

func (s *Newspaper) Create(ctx context.Context, slug, displayName string) (domain.Newspaper, error) {
	normalized := NormalizeSlug(slug)
	if normalized == "" || strings.TrimSpace(displayName) == "" {
		return domain.Newspaper{}, &apperrors.ErrorWithStatusCode{Message: "Missing required fields: slug, display_name", StatusCode: 400}
	}
	return s.storage.CreateNewspaper(ctx, normalized, displayName)
}

func (s *Newspaper) Delete(ctx context.Context, slug string) error {
	if slug == "" {
		return &apperrors.ErrorWithStatusCode{Message: "Missing required field: slug", StatusCode: 400}
	}
	return s.storage.DeleteNewspaper(ctx, slug)
}
