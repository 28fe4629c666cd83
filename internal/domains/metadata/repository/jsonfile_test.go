package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"antiques-backend/internal/domains/metadata/model"
)

func newTestRepo(t *testing.T) MetadataRepository {
	t.Helper()
	return NewJSONFileRepository(filepath.Join(t.TempDir(), "metadata.json"))
}

func TestListSeedsDefaults(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, kind := range []model.Kind{model.KindCategories, model.KindPeriods, model.KindConditions} {
		entries, err := repo.List(ctx, kind)
		require.NoError(t, err)
		require.Len(t, entries, len(model.Defaults[kind]), "kind %s", kind)
		for i, entry := range entries {
			assert.Equal(t, model.Defaults[kind][i], entry.Name)
			assert.NotEmpty(t, entry.ID)
		}
	}
}

func TestAddPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.json")
	ctx := context.Background()

	repo := NewJSONFileRepository(path)
	entry, err := repo.Add(ctx, model.KindCategories, "Clocks")
	require.NoError(t, err)
	assert.Equal(t, "Clocks", entry.Name)
	assert.NotEmpty(t, entry.ID)

	// A fresh instance sees the written file, not re-seeded defaults.
	reopened := NewJSONFileRepository(path)
	entries, err := reopened.List(ctx, model.KindCategories)
	require.NoError(t, err)
	require.Len(t, entries, len(model.Defaults[model.KindCategories])+1)
	assert.Equal(t, "Clocks", entries[len(entries)-1].Name)
}

func TestUpdateEntry(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.Add(ctx, model.KindPeriods, "Baroque")
	require.NoError(t, err)

	updated, err := repo.Update(ctx, model.KindPeriods, added.ID, "Rococo")
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, "Rococo", updated.Name)

	entries, err := repo.List(ctx, model.KindPeriods)
	require.NoError(t, err)
	assert.Equal(t, "Rococo", entries[len(entries)-1].Name)

	_, err = repo.Update(ctx, model.KindPeriods, "no-such-id", "X")
	assert.ErrorIs(t, err, model.ErrEntryNotFound)

	// Ids are scoped per kind.
	_, err = repo.Update(ctx, model.KindConditions, added.ID, "X")
	assert.ErrorIs(t, err, model.ErrEntryNotFound)
}

func TestDeleteEntry(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.Add(ctx, model.KindConditions, "Restored")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, model.KindConditions, added.ID))

	entries, err := repo.List(ctx, model.KindConditions)
	require.NoError(t, err)
	assert.Len(t, entries, len(model.Defaults[model.KindConditions]))

	assert.ErrorIs(t, repo.Delete(ctx, model.KindConditions, added.ID), model.ErrEntryNotFound)
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"categories", "periods", "conditions"} {
		kind, err := model.ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, model.Kind(s), kind)
	}

	_, err := model.ParseKind("styles")
	assert.ErrorIs(t, err, model.ErrInvalidKind)
}
