package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"antiques-backend/internal/domains/item/model"
)

func newTestRepo(t *testing.T) (ItemRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	return NewJSONFileRepository(path), path
}

func makeItem(id, name, location string) model.Item {
	now := time.Now().UTC().Truncate(time.Second)
	return model.Item{
		ID:            id,
		Name:          name,
		Description:   "desc",
		Price:         100,
		Category:      "Furniture",
		Period:        "Victorian",
		Condition:     "Good",
		Images:        []string{"https://example.com/img.jpg"},
		StoreLocation: location,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestInsertPrependsNewestFirst(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, makeItem("item_1", "First", "Main St")))
	require.NoError(t, repo.Insert(ctx, makeItem("item_2", "Second", "Main St")))
	require.NoError(t, repo.Insert(ctx, makeItem("item_3", "Third", "Main St")))

	items, total, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, "item_3", items[0].ID)
	assert.Equal(t, "item_2", items[1].ID)
	assert.Equal(t, "item_1", items[2].ID)

	// The on-disk order matches what List returns.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var stored []model.Item
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 3)
	assert.Equal(t, "item_3", stored[0].ID)
}

func TestListOnMissingFileIsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	items, total, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestListOnCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	repo := NewJSONFileRepository(path)

	items, total, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestListFilters(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := makeItem("item_a", "Clock", "Main St")
	a.Category = "Clocks"
	b := makeItem("item_b", "Chair", "Main St")
	b.Featured = true
	c := makeItem("item_c", "Desk", "Oak Ave")
	c.Period = "Georgian"

	for _, item := range []model.Item{a, b, c} {
		require.NoError(t, repo.Insert(ctx, item))
	}

	items, total, err := repo.List(ctx, Filter{StoreLocation: "Main St"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, items, 2)

	featured := true
	items, _, err = repo.List(ctx, Filter{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item_b", items[0].ID)

	notFeatured := false
	items, _, err = repo.List(ctx, Filter{Featured: &notFeatured})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, _, err = repo.List(ctx, Filter{Category: "Clocks"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item_a", items[0].ID)

	items, _, err = repo.List(ctx, Filter{Period: "Georgian", StoreLocation: "Oak Ave"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item_c", items[0].ID)

	items, total, err = repo.List(ctx, Filter{StoreLocation: "Nowhere"})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 3, total)
}

func TestGetByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, makeItem("item_x", "Lamp", "Main St")))

	item, err := repo.GetByID(ctx, "item_x")
	require.NoError(t, err)
	assert.Equal(t, "Lamp", item.Name)

	_, err = repo.GetByID(ctx, "item_missing")
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestGetByIDBeforeFirstWrite(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "item_x")
	assert.ErrorIs(t, err, model.ErrNoItems)
}

func TestReplaceKeepsPosition(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, makeItem("item_1", "First", "Main St")))
	require.NoError(t, repo.Insert(ctx, makeItem("item_2", "Second", "Main St")))

	updated := makeItem("item_1", "First Renamed", "Main St")
	require.NoError(t, repo.Replace(ctx, updated))

	items, _, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item_2", items[0].ID)
	assert.Equal(t, "First Renamed", items[1].Name)

	err = repo.Replace(ctx, makeItem("item_ghost", "Ghost", "Main St"))
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestRemove(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, makeItem("item_1", "First", "Main St")))
	require.NoError(t, repo.Insert(ctx, makeItem("item_2", "Second", "Main St")))

	require.NoError(t, repo.Remove(ctx, "item_1"))

	items, total, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "item_2", items[0].ID)

	assert.ErrorIs(t, repo.Remove(ctx, "item_1"), model.ErrItemNotFound)
}
