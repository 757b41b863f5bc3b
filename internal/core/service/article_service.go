package service

import (
	"context"
	"time"

	"github.com/funews/news-management-system/internal/api/metrics"
	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

// ArticleService implements article CRUD with audit stamping, the tag-set
// rewrite and the staff ownership rule.
type ArticleService struct {
	repo ports.ArticleRepository
	now  func() time.Time
}

func NewArticleService(repo ports.ArticleRepository) *ArticleService {
	return &ArticleService{repo: repo, now: time.Now}
}

func (s *ArticleService) GetAll(ctx context.Context) ([]domain.NewsArticle, error) {
	return s.repo.GetAll(ctx)
}

func (s *ArticleService) GetActive(ctx context.Context) ([]domain.NewsArticle, error) {
	return s.repo.GetActive(ctx)
}

func (s *ArticleService) GetByID(ctx context.Context, id int64) (*domain.NewsArticle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArticleService) GetByCreator(ctx context.Context, createdByID int64) ([]domain.NewsArticle, error) {
	return s.repo.GetByCreator(ctx, createdByID)
}

func (s *ArticleService) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.NewsArticle, error) {
	return s.repo.GetByDateRange(ctx, start, end)
}

// Create inserts a new article. CreatedByID and CreatedDate come from the
// actor and the clock, never from the caller, and the article starts active
// with an empty tag set regardless of input.
func (s *ArticleService) Create(ctx context.Context, in ports.ArticleInput, actor domain.Identity) (*domain.NewsArticle, error) {
	article := &domain.NewsArticle{
		NewsTitle:   in.NewsTitle,
		Headline:    in.Headline,
		NewsContent: in.NewsContent,
		NewsSource:  in.NewsSource,
		CategoryID:  in.CategoryID,
		NewsStatus:  true,
		CreatedByID: actor.ID,
		CreatedDate: s.now().UTC(),
	}

	created, err := s.repo.Add(ctx, article)
	if err != nil {
		return nil, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("article", "create").Inc()
	return created, nil
}

// Update replaces every editable field and rewrites the tag association set
// to exactly in.TagIDs. The existing CreatedByID/CreatedDate survive
// untouched; UpdatedByID/ModifiedDate are stamped from the actor.
func (s *ArticleService) Update(ctx context.Context, id int64, in ports.ArticleInput, actor domain.Identity) (*domain.NewsArticle, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(existing, actor); err != nil {
		return nil, err
	}

	updatedBy := actor.ID
	modified := s.now().UTC()
	article := &domain.NewsArticle{
		NewsArticleID: id,
		NewsTitle:     in.NewsTitle,
		Headline:      in.Headline,
		NewsContent:   in.NewsContent,
		NewsSource:    in.NewsSource,
		CategoryID:    in.CategoryID,
		NewsStatus:    in.NewsStatus,
		CreatedByID:   existing.CreatedByID,
		CreatedDate:   existing.CreatedDate,
		UpdatedByID:   &updatedBy,
		ModifiedDate:  &modified,
	}

	if err := s.repo.Update(ctx, article, in.TagIDs); err != nil {
		return nil, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("article", "update").Inc()

	return s.repo.GetByID(ctx, id)
}

func (s *ArticleService) Delete(ctx context.Context, id int64, actor domain.Identity) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(existing, actor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("article", "delete").Inc()
	return nil
}

func (s *ArticleService) Search(ctx context.Context, filters ports.ArticleSearchFilters) ([]domain.NewsArticle, error) {
	return s.repo.Search(ctx, filters)
}

// checkOwnership enforces the authorship rule: Admin manages any article,
// Staff only the ones they created.
func (s *ArticleService) checkOwnership(article *domain.NewsArticle, actor domain.Identity) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if article.CreatedByID != actor.ID {
		return domain.ErrForbidden
	}
	return nil
}
