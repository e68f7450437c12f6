package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ivanoskov/shop_bot/internal/model"
	"github.com/supabase-community/supabase-go"
)

const (
	categoriesTable = "categories"
	productsTable   = "products"
)

// SupabaseRepository хранит каталог в таблицах categories и products.
// Сохранение заменяет содержимое таблицы целиком, как и файловое хранилище.
type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(url, key string) (*SupabaseRepository, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, err
	}

	return &SupabaseRepository{
		client: client,
	}, nil
}

func (r *SupabaseRepository) LoadCategories(ctx context.Context) ([]model.Record, error) {
	var categories []model.Record
	if err := r.selectAll(categoriesTable, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *SupabaseRepository) SaveCategories(ctx context.Context, categories []model.Record) error {
	return r.replaceAll(categoriesTable, categories, len(categories))
}

func (r *SupabaseRepository) LoadProducts(ctx context.Context) ([]model.Record, error) {
	var products []model.Record
	if err := r.selectAll(productsTable, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SupabaseRepository) SaveProducts(ctx context.Context, products []model.Record) error {
	return r.replaceAll(productsTable, products, len(products))
}

func (r *SupabaseRepository) selectAll(table string, v any) error {
	data, _, err := r.client.From(table).
		Select("*", "", false).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", table, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", table, err)
	}
	return nil
}

// replaceAll удаляет все строки и вставляет rows одним запросом.
// PostgREST не выполняет DELETE без фильтра, id каталога всегда положительные.
func (r *SupabaseRepository) replaceAll(table string, rows any, count int) error {
	_, _, err := r.client.From(table).
		Delete("", "").
		Neq("id", "-1").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	if count == 0 {
		return nil
	}

	_, _, err = r.client.From(table).Insert(rows, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to insert %s: %w", table, err)
	}
	return nil
}
