package repository

import (
	"context"

	"antiques-backend/internal/domains/item/model"
)

// Filter holds the optional equality filters of the catalog listing.
// Featured is a pointer so "not filtered" and "featured=false" stay distinct.
type Filter struct {
	StoreLocation string
	Featured      *bool
	Category      string
	Period        string
}

// ItemRepository is the data-access contract for the catalog collection.
//
// The collection's natural order is newest-first: Insert prepends and
// Replace keeps the record's position.
type ItemRepository interface {
	// List returns the filtered items in stored order plus the unfiltered total.
	List(ctx context.Context, filter Filter) (items []model.Item, total int, err error)
	GetByID(ctx context.Context, id string) (*model.Item, error)
	Insert(ctx context.Context, item model.Item) error
	Replace(ctx context.Context, item model.Item) error
	Remove(ctx context.Context, id string) error
}
