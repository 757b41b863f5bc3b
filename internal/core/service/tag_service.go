package service

import (
	"context"

	"github.com/funews/news-management-system/internal/api/metrics"
	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

// TagService implements tag CRUD. Tags carry no delete guard.
type TagService struct {
	repo ports.TagRepository
}

func NewTagService(repo ports.TagRepository) *TagService {
	return &TagService{repo: repo}
}

func (s *TagService) GetAll(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.GetAll(ctx)
}

func (s *TagService) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TagService) Add(ctx context.Context, in ports.TagInput) (*domain.Tag, error) {
	created, err := s.repo.Add(ctx, &domain.Tag{TagName: in.TagName, Note: in.Note})
	if err != nil {
		return nil, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("tag", "create").Inc()
	return created, nil
}

func (s *TagService) Update(ctx context.Context, id int64, in ports.TagInput) (*domain.Tag, error) {
	tag := &domain.Tag{TagID: id, TagName: in.TagName, Note: in.Note}
	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("tag", "update").Inc()
	return tag, nil
}

func (s *TagService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("tag", "delete").Inc()
	return nil
}

func (s *TagService) Search(ctx context.Context, name string) ([]domain.Tag, error) {
	return s.repo.Search(ctx, name)
}
