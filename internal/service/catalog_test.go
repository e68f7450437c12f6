package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivanoskov/shop_bot/internal/model"
	"github.com/ivanoskov/shop_bot/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) (*Catalog, string) {
	t.Helper()
	dir := t.TempDir()
	repo := repository.NewFileRepository(filepath.Join(dir, "categories.json"), filepath.Join(dir, "products.json"))
	exporter := NewExporter("https://smokelab.store", filepath.Join(dir, "web", "data.js"))
	return NewCatalog(repo, exporter), dir
}

func TestCatalogGenerateDataJS(t *testing.T) {
	catalog, dir := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.ReplaceCategories(ctx, records(`{"id":1,"name":"Жидкости","img":"/uploads/c.png"}`)))
	require.NoError(t, catalog.ReplaceProducts(ctx, records(`{"id":1,"name":"Salt","img":"/uploads/p.png","category":"Liquids"}`)))

	require.NoError(t, catalog.GenerateDataJS(ctx))

	data, err := os.ReadFile(filepath.Join(dir, "web", "data.js"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"img": "https://smokelab.store/uploads/c.png"`)
	assert.Contains(t, string(data), `"img": "https://smokelab.store/uploads/p.png"`)

	// файлы каталога не меняются
	products, err := catalog.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.JSONEq(t, `{"id":1,"name":"Salt","img":"/uploads/p.png","category":"Liquids"}`, string(products[0]))
	assert.Contains(t, string(data), `"category": "Liquids"`)
}

func TestCatalogGenerateDataJSMissingCatalog(t *testing.T) {
	catalog, dir := newTestCatalog(t)

	err := catalog.GenerateDataJS(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "web", "data.js"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestCatalogGetCategoryStats(t *testing.T) {
	catalog, _ := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.ReplaceCategories(ctx, records(`{"id":1,"name":"A"}`, `{"id":2,"name":"B"}`)))
	require.NoError(t, catalog.ReplaceProducts(ctx, records(
		`{"id":1,"categoryId":1}`,
		`{"id":2,"categoryId":"1","price":"450"}`,
		`{"id":3,"categoryId":2,"popular":true}`,
		`{"id":4,"categoryId":9}`,
		`{"id":5,"category":"Liquids"}`,
		`7`,
	)))

	stats, err := catalog.GetCategoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.CategoryStats{
		{CategoryID: 1, Name: "A", Count: 2},
		{CategoryID: 2, Name: "B", Count: 1},
		{Name: "Без категории", Count: 3},
	}, stats)
}

func TestCatalogGetCategoryStatsEmpty(t *testing.T) {
	catalog, _ := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.ReplaceCategories(ctx, nil))
	require.NoError(t, catalog.ReplaceProducts(ctx, nil))

	_, err := catalog.GetCategoryStats(ctx)
	assert.ErrorIs(t, err, ErrNoCategories)
}
