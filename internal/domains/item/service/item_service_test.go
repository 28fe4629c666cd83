package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"antiques-backend/internal/domains/item/model"
	"antiques-backend/internal/domains/item/repository"
	"antiques-backend/internal/infrastructure/storage"
)

const testBaseURL = "http://localhost:8080"

func newTestService(t *testing.T) (ItemService, *storage.DiskImageStore, string) {
	t.Helper()
	root := t.TempDir()
	itemsPath := filepath.Join(root, "data", "items.json")
	store := storage.NewDiskImageStore(filepath.Join(root, "uploads"), "/assets/uploaded", 10<<20)
	repo := repository.NewJSONFileRepository(itemsPath)
	return NewItemService(repo, store), store, itemsPath
}

func testPayload() model.ItemPayload {
	return model.ItemPayload{
		Name:          "Regency Card Table",
		Description:   "Rosewood, circa 1815",
		Price:         2400,
		Category:      "Tables",
		Period:        "Regency",
		Condition:     "Excellent",
		Images:        []string{"https://example.com/table.jpg"},
		StoreLocation: "Main St",
	}
}

func pngDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestCreateItem(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, testPayload(), testBaseURL)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(item.ID, "item_"))
	assert.Equal(t, "Regency Card Table", item.Name)
	assert.Equal(t, []string{"https://example.com/table.jpg"}, item.Images)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
	assert.DirExists(t, store.ItemDir(item.ID))

	second, err := svc.CreateItem(ctx, testPayload(), testBaseURL)
	require.NoError(t, err)
	assert.NotEqual(t, item.ID, second.ID)

	items, total, err := svc.ListItems(ctx, repository.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
}

func TestCreateItemDecodesInlineImages(t *testing.T) {
	svc, store, _ := newTestService(t)

	payload := testPayload()
	payload.Images = []string{pngDataURI(t)}

	item, err := svc.CreateItem(context.Background(), payload, testBaseURL)
	require.NoError(t, err)
	require.Len(t, item.Images, 1)
	assert.True(t, strings.HasPrefix(item.Images[0], testBaseURL+"/assets/uploaded/items/"+item.ID+"/"))

	entries, err := os.ReadDir(store.ItemDir(item.ID))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateItemValidationRunsBeforeAnyWrite(t *testing.T) {
	svc, _, itemsPath := newTestService(t)

	payload := testPayload()
	payload.Price = 0

	_, err := svc.CreateItem(context.Background(), payload, testBaseURL)
	require.Error(t, err)
	assert.Equal(t, "Price must be greater than 0", err.Error())
	assert.NoFileExists(t, itemsPath)
}

func TestGetItem(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, testPayload(), testBaseURL)
	require.NoError(t, err)

	got, err := svc.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetItem(ctx, "item_missing")
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	_, err = svc.GetItem(ctx, "   ")
	assert.ErrorIs(t, err, model.ErrItemIDRequired)
}

func TestUpdateItemPreservesCreatedAtAndPosition(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateItem(ctx, testPayload(), testBaseURL)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := svc.CreateItem(ctx, testPayload(), testBaseURL)
	require.NoError(t, err)

	payload := testPayload()
	payload.Name = "Renamed Table"
	updated, err := svc.UpdateItem(ctx, first.ID, payload, testBaseURL)
	require.NoError(t, err)

	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Renamed Table", updated.Name)
	assert.Equal(t, first.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	items, _, err := svc.ListItems(ctx, repository.Filter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, "Renamed Table", items[1].Name)
}

func TestUpdateItemErrors(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateItem(ctx, "", testPayload(), testBaseURL)
	assert.ErrorIs(t, err, model.ErrItemIDRequired)

	_, err = svc.UpdateItem(ctx, "item_missing", testPayload(), testBaseURL)
	assert.ErrorIs(t, err, model.ErrNoItems)

	created, err := svc.CreateItem(ctx, testPayload(), testBaseURL)
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, "item_missing", testPayload(), testBaseURL)
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	bad := testPayload()
	bad.Name = "  "
	_, err = svc.UpdateItem(ctx, created.ID, bad, testBaseURL)
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())
}

func TestDeleteItemRemovesRecordAndImages(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	payload := testPayload()
	payload.Images = []string{pngDataURI(t)}
	created, err := svc.CreateItem(ctx, payload, testBaseURL)
	require.NoError(t, err)
	require.DirExists(t, store.ItemDir(created.ID))

	warning, err := svc.DeleteItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.NoDirExists(t, store.ItemDir(created.ID))

	_, err = svc.GetItem(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	_, err = svc.DeleteItem(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestDeleteItemRequiresID(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.DeleteItem(context.Background(), " ")
	assert.ErrorIs(t, err, model.ErrItemIDRequired)
}
