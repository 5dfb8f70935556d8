package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/nubank-analyzer/internal/logging"
	"fjacquet/nubank-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundtrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	store := NewCategoryStore(file, &logging.MockLogger{})

	want := []models.CategoryConfig{
		{Name: "contas", Keywords: []string{"luz", "água"}},
		{Name: "restaurantes", Keywords: []string{"restaurante", "ifood"}},
	}
	require.NoError(t, store.SaveCategories(want))

	got, err := store.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPreservesCategoryOrder(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	store := NewCategoryStore(file, nil)

	want := []models.CategoryConfig{
		{Name: "z-primeira", Keywords: []string{"a"}},
		{Name: "a-segunda", Keywords: []string{"b"}},
		{Name: "m-terceira", Keywords: []string{"c"}},
	}
	require.NoError(t, store.SaveCategories(want))

	got, err := store.LoadCategories()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "z-primeira", got[0].Name)
	assert.Equal(t, "a-segunda", got[1].Name)
	assert.Equal(t, "m-terceira", got[2].Name)
}

func TestLoadMissingFileFallsBackToBuiltin(t *testing.T) {
	store := NewCategoryStore(filepath.Join(t.TempDir(), "absent.yaml"), &logging.MockLogger{})

	got, err := store.LoadCategories()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadBareListWithoutTopLevelKey(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	bare := "- name: transporte\n  keywords:\n    - uber\n    - \"99\"\n"
	require.NoError(t, os.WriteFile(file, []byte(bare), 0o600))

	store := NewCategoryStore(file, nil)
	got, err := store.LoadCategories()

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "transporte", got[0].Name)
	assert.Equal(t, []string{"uber", "99"}, got[0].Keywords)
}

func TestLoadMalformedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte("categories: [broken"), 0o600))

	store := NewCategoryStore(file, nil)
	_, err := store.LoadCategories()

	assert.Error(t, err)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "dir", "categories.yaml")
	store := NewCategoryStore(file, nil)

	require.NoError(t, store.SaveCategories([]models.CategoryConfig{{Name: "outros"}}))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionConfigFile, info.Mode().Perm())
}

func TestNewCategoryStoreDefaultFilename(t *testing.T) {
	store := NewCategoryStore("", nil)
	assert.Equal(t, "categories.yaml", store.CategoriesFile)
}
