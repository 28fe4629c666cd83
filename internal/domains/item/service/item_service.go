package service

import (
	"context"
	"strings"
	"time"

	"antiques-backend/internal/domains/item/model"
	"antiques-backend/internal/domains/item/repository"
	"antiques-backend/internal/infrastructure/storage"
	"antiques-backend/pkg/logger"

	"github.com/google/uuid"
)

type itemService struct {
	repo   repository.ItemRepository
	images *storage.DiskImageStore
}

func NewItemService(repo repository.ItemRepository, images *storage.DiskImageStore) ItemService {
	return &itemService{repo: repo, images: images}
}

func (s *itemService) ListItems(ctx context.Context, filter repository.Filter) ([]model.Item, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *itemService) GetItem(ctx context.Context, id string) (*model.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.ErrItemIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

// CreateItem validates, decodes inline images, and prepends the new record.
// Validation runs before any file is touched; once image writes begin, a
// later persist failure leaves already-written image files behind (the write
// sequence is not atomic across metadata and files).
func (s *itemService) CreateItem(ctx context.Context, payload model.ItemPayload, baseURL string) (*model.Item, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	id := "item_" + uuid.NewString()

	if err := s.images.EnsureItemDir(id); err != nil {
		return nil, err
	}

	processed, err := s.images.SaveInlineImages(id, payload.Images, baseURL)
	if err != nil {
		return nil, err
	}

	item := model.NewItem(id, payload, processed, time.Now())
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateItem fully replaces the record's fields except ID and CreatedAt.
// The record keeps its position in the collection.
func (s *itemService) UpdateItem(ctx context.Context, id string, payload model.ItemPayload, baseURL string) (*model.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.ErrItemIDRequired
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.images.EnsureItemDir(id); err != nil {
		return nil, err
	}

	processed, err := s.images.SaveInlineImages(id, payload.Images, baseURL)
	if err != nil {
		return nil, err
	}

	item := model.NewItem(id, payload, processed, time.Now())
	item.CreatedAt = existing.CreatedAt

	if err := s.repo.Replace(ctx, item); err != nil {
		return nil, err
	}

	return &item, nil
}

// DeleteItem removes the record, then clears the item's image directory.
// Record removal is authoritative; a cleanup failure is logged and reported
// as a warning so the caller can surface it without failing the delete.
func (s *itemService) DeleteItem(ctx context.Context, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", model.ErrItemIDRequired
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		return "", err
	}

	if err := s.images.DeleteItemTree(id); err != nil {
		logger.Warn("failed to delete item image directory", map[string]interface{}{
			"item_id": id,
			"error":   err.Error(),
		})
		return "Item deleted, but its image directory could not be removed", nil
	}

	return "", nil
}
