package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"antiques-backend/internal/domains/item/model"
)

// jsonFileRepository persists the whole catalog as a single JSON array file.
// Every mutation is a read-modify-write of the full file, serialized by an
// in-process mutex and written atomically (temp file + rename). Concurrent
// processes sharing the file can still clobber each other; that limitation is
// accepted for a single-instance deployment.
type jsonFileRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileRepository(path string) ItemRepository {
	return &jsonFileRepository{path: path}
}

// load reads the backing file. A missing or unparsable file yields an empty
// collection so a fresh deployment works without seeding.
func (r *jsonFileRepository) load() []model.Item {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []model.Item{}
	}

	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []model.Item{}
	}
	return items
}

// loadExisting is load with the distinction update/delete/get need: a missing
// backing file means the catalog was never written.
func (r *jsonFileRepository) loadExisting() ([]model.Item, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, model.ErrNoItems
	}
	return r.load(), nil
}

func (r *jsonFileRepository) persist(items []model.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "items-*.json")
	if err != nil {
		return fmt.Errorf("failed to save item data: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save item data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save item data: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save item data: %w", err)
	}
	return nil
}

func (r *jsonFileRepository) List(ctx context.Context, filter Filter) ([]model.Item, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()
	total := len(items)

	filtered := make([]model.Item, 0, total)
	for _, item := range items {
		if filter.StoreLocation != "" && item.StoreLocation != filter.StoreLocation {
			continue
		}
		if filter.Featured != nil && item.Featured != *filter.Featured {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Period != "" && item.Period != filter.Period {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered, total, nil
}

func (r *jsonFileRepository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.loadExisting()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, model.ErrItemNotFound
}

// Insert prepends the record so the file stays newest-first.
func (r *jsonFileRepository) Insert(ctx context.Context, item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load()
	items = append([]model.Item{item}, items...)
	return r.persist(items)
}

// Replace swaps the record in place, leaving its position untouched.
func (r *jsonFileRepository) Replace(ctx context.Context, item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.loadExisting()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return r.persist(items)
		}
	}
	return model.ErrItemNotFound
}

func (r *jsonFileRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.loadExisting()
	if err != nil {
		return err
	}

	remaining := make([]model.Item, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}

	if !found {
		return model.ErrItemNotFound
	}
	return r.persist(remaining)
}
