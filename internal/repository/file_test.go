package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivanoskov/shop_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	dir := t.TempDir()
	return NewFileRepository(filepath.Join(dir, "categories.json"), filepath.Join(dir, "products.json")), dir
}

func records(items ...string) []model.Record {
	out := make([]model.Record, len(items))
	for i, item := range items {
		out[i] = model.Record(item)
	}
	return out
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	products := records(
		`{"id":1,"name":"Жидкость","price":450,"img":"/uploads/1.png","ml":"30","nic":"20","categoryId":1}`,
		`{"id":2,"name":"Картридж"}`,
	)
	require.NoError(t, repo.SaveProducts(ctx, products))

	got, err := repo.LoadProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(products))
	for i := range products {
		assert.JSONEq(t, string(products[i]), string(got[i]))
	}

	categories := records(`{"id":1,"name":"Жидкости","img":""}`)
	require.NoError(t, repo.SaveCategories(ctx, categories))

	gotCats, err := repo.LoadCategories(ctx)
	require.NoError(t, err)
	require.Len(t, gotCats, 1)
	assert.JSONEq(t, string(categories[0]), string(gotCats[0]))
}

func TestFileRepositoryKeepsUnknownFields(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()

	const stored = `[
  {
    "id": 1,
    "name": "Juice <mango>",
    "price": "450",
    "category": "Liquids",
    "popular": true,
    "tags": [
      "new"
    ]
  }
]`
	path := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(path, []byte(stored), 0o644))

	products, err := repo.LoadProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.JSONEq(t, `{"id":1,"name":"Juice <mango>","price":"450","category":"Liquids","popular":true,"tags":["new"]}`, string(products[0]))

	require.NoError(t, repo.SaveProducts(ctx, products))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, stored, string(data))
}

func TestFileRepositoryWritesIndentedArray(t *testing.T) {
	repo, dir := newTestRepo(t)

	require.NoError(t, repo.SaveCategories(context.Background(), nil))

	data, err := os.ReadFile(filepath.Join(dir, "categories.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	require.NoError(t, repo.SaveCategories(context.Background(), records(`{"id":7,"name":"A","img":""}`)))
	data, err = os.ReadFile(filepath.Join(dir, "categories.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"id\": 7,\n    \"name\": \"A\",\n    \"img\": \"\"\n  }\n]", string(data))
}

func TestFileRepositoryLoadErrors(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.LoadProducts(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(`{"products": []}`), 0o644))
	_, err = repo.LoadProducts(ctx)
	assert.ErrorIs(t, err, ErrNotArray)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "categories.json"), []byte(`[{"id": 1,`), 0o644))
	_, err = repo.LoadCategories(ctx)
	assert.Error(t, err)
}
