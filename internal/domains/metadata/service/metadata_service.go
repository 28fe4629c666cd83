package service

import (
	"context"
	"strings"

	"antiques-backend/internal/domains/metadata/model"
	"antiques-backend/internal/domains/metadata/repository"
)

// MetadataService fronts the three named-entity lists. Beyond trimming and
// the non-empty check there is deliberately no validation: names need not be
// unique, and nothing ties them to the items that reference them.
type MetadataService interface {
	List(ctx context.Context, kind model.Kind) ([]model.Entry, error)
	Add(ctx context.Context, kind model.Kind, name string) (model.Entry, error)
	Update(ctx context.Context, kind model.Kind, id, name string) (model.Entry, error)
	Delete(ctx context.Context, kind model.Kind, id string) error
}

type metadataService struct {
	repo repository.MetadataRepository
}

func NewMetadataService(repo repository.MetadataRepository) MetadataService {
	return &metadataService{repo: repo}
}

func (s *metadataService) List(ctx context.Context, kind model.Kind) ([]model.Entry, error) {
	return s.repo.List(ctx, kind)
}

func (s *metadataService) Add(ctx context.Context, kind model.Kind, name string) (model.Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Entry{}, model.ErrNameRequired
	}
	return s.repo.Add(ctx, kind, name)
}

func (s *metadataService) Update(ctx context.Context, kind model.Kind, id, name string) (model.Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Entry{}, model.ErrNameRequired
	}
	return s.repo.Update(ctx, kind, id, name)
}

func (s *metadataService) Delete(ctx context.Context, kind model.Kind, id string) error {
	return s.repo.Delete(ctx, kind, id)
}
