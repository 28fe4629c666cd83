package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"antiques-backend/internal/domains/metadata/model"

	"github.com/google/uuid"
)

// MetadataRepository is CRUD over the three named-entity lists. Names are
// not unique; lookups are by generated id only.
type MetadataRepository interface {
	List(ctx context.Context, kind model.Kind) ([]model.Entry, error)
	Add(ctx context.Context, kind model.Kind, name string) (model.Entry, error)
	Update(ctx context.Context, kind model.Kind, id, name string) (model.Entry, error)
	Delete(ctx context.Context, kind model.Kind, id string) error
}

// document is the shape of metadata.json.
type document struct {
	Categories []model.Entry `json:"categories"`
	Periods    []model.Entry `json:"periods"`
	Conditions []model.Entry `json:"conditions"`
}

type jsonFileRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileRepository(path string) MetadataRepository {
	return &jsonFileRepository{path: path}
}

// load reads the backing file, seeding the default lists when it is absent
// or unparsable.
func (r *jsonFileRepository) load() document {
	data, err := os.ReadFile(r.path)
	if err == nil {
		var doc document
		if json.Unmarshal(data, &doc) == nil {
			return doc
		}
	}

	return document{
		Categories: seed(model.KindCategories),
		Periods:    seed(model.KindPeriods),
		Conditions: seed(model.KindConditions),
	}
}

func seed(kind model.Kind) []model.Entry {
	names := model.Defaults[kind]
	entries := make([]model.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, model.Entry{ID: uuid.NewString(), Name: name})
	}
	return entries
}

func (r *jsonFileRepository) persist(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "metadata-*.json")
	if err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save metadata: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save metadata: %w", err)
	}
	return nil
}

func (doc *document) list(kind model.Kind) *[]model.Entry {
	switch kind {
	case model.KindCategories:
		return &doc.Categories
	case model.KindPeriods:
		return &doc.Periods
	default:
		return &doc.Conditions
	}
}

func (r *jsonFileRepository) List(ctx context.Context, kind model.Kind) ([]model.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.load()
	return append([]model.Entry{}, *doc.list(kind)...), nil
}

func (r *jsonFileRepository) Add(ctx context.Context, kind model.Kind, name string) (model.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.load()
	entry := model.Entry{ID: uuid.NewString(), Name: name}

	list := doc.list(kind)
	*list = append(*list, entry)

	if err := r.persist(doc); err != nil {
		return model.Entry{}, err
	}
	return entry, nil
}

func (r *jsonFileRepository) Update(ctx context.Context, kind model.Kind, id, name string) (model.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.load()
	list := doc.list(kind)

	for i := range *list {
		if (*list)[i].ID == id {
			(*list)[i].Name = name
			if err := r.persist(doc); err != nil {
				return model.Entry{}, err
			}
			return (*list)[i], nil
		}
	}
	return model.Entry{}, model.ErrEntryNotFound
}

func (r *jsonFileRepository) Delete(ctx context.Context, kind model.Kind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.load()
	list := doc.list(kind)

	for i := range *list {
		if (*list)[i].ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return r.persist(doc)
		}
	}
	return model.ErrEntryNotFound
}
