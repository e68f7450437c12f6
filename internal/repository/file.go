package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ivanoskov/shop_bot/internal/model"
)

// FileRepository хранит каталог в двух JSON-файлах.
// Блокировок нет: при одновременной записи побеждает последняя.
type FileRepository struct {
	categoriesPath string
	productsPath   string
}

func NewFileRepository(categoriesPath, productsPath string) *FileRepository {
	return &FileRepository{
		categoriesPath: categoriesPath,
		productsPath:   productsPath,
	}
}

func (r *FileRepository) LoadCategories(ctx context.Context) ([]model.Record, error) {
	var categories []model.Record
	if err := ReadJSONArray(r.categoriesPath, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *FileRepository) SaveCategories(ctx context.Context, categories []model.Record) error {
	if categories == nil {
		categories = []model.Record{}
	}
	return WriteJSON(r.categoriesPath, categories)
}

func (r *FileRepository) LoadProducts(ctx context.Context) ([]model.Record, error) {
	var products []model.Record
	if err := ReadJSONArray(r.productsPath, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *FileRepository) SaveProducts(ctx context.Context, products []model.Record) error {
	if products == nil {
		products = []model.Record{}
	}
	return WriteJSON(r.productsPath, products)
}

// ReadJSONArray читает файл и декодирует в v, если в нем JSON-массив
func ReadJSONArray(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !IsJSONArray(data) {
		return fmt.Errorf("failed to parse %s: %w", path, ErrNotArray)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// WriteJSON перезаписывает файл целиком, отступ 2 пробела.
// HTML-символы в строках не экранируются.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, bytes.TrimRight(buf.Bytes(), "\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// IsJSONArray проверяет, что документ начинается с '['
func IsJSONArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}
