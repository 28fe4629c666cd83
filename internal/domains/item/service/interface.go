package service

import (
	"context"

	"antiques-backend/internal/domains/item/model"
	"antiques-backend/internal/domains/item/repository"
)

// ItemService is the business-logic contract for catalog items.
//
// baseURL is the scheme+host of the current request; inline data-URI images
// are written to disk and returned as fully-qualified URLs built from it.
type ItemService interface {
	ListItems(ctx context.Context, filter repository.Filter) (items []model.Item, total int, err error)
	GetItem(ctx context.Context, id string) (*model.Item, error)
	CreateItem(ctx context.Context, payload model.ItemPayload, baseURL string) (*model.Item, error)
	UpdateItem(ctx context.Context, id string, payload model.ItemPayload, baseURL string) (*model.Item, error)
	// DeleteItem removes the record authoritatively; image-directory cleanup
	// is best-effort and a failure comes back as a warning, not an error.
	DeleteItem(ctx context.Context, id string) (cleanupWarning string, err error)
}
