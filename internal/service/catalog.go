package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ivanoskov/shop_bot/internal/model"
)

// ErrNoCategories в каталоге нет данных для статистики
var ErrNoCategories = errors.New("catalog has no categories")

// Catalog предоставляет методы для работы с каталогом магазина
type Catalog struct {
	repo     Repository
	exporter *Exporter
}

// Repository определяет интерфейс для работы с хранилищем каталога
type Repository interface {
	LoadCategories(ctx context.Context) ([]model.Record, error)
	SaveCategories(ctx context.Context, categories []model.Record) error
	LoadProducts(ctx context.Context) ([]model.Record, error)
	SaveProducts(ctx context.Context, products []model.Record) error
}

// NewCatalog создает новый экземпляр Catalog
func NewCatalog(repo Repository, exporter *Exporter) *Catalog {
	return &Catalog{
		repo:     repo,
		exporter: exporter,
	}
}

func (s *Catalog) GetProducts(ctx context.Context) ([]model.Record, error) {
	return s.repo.LoadProducts(ctx)
}

// ReplaceProducts заменяет весь список товаров
func (s *Catalog) ReplaceProducts(ctx context.Context, products []model.Record) error {
	return s.repo.SaveProducts(ctx, products)
}

func (s *Catalog) GetCategories(ctx context.Context) ([]model.Record, error) {
	return s.repo.LoadCategories(ctx)
}

// ReplaceCategories заменяет весь список категорий
func (s *Catalog) ReplaceCategories(ctx context.Context, categories []model.Record) error {
	return s.repo.SaveCategories(ctx, categories)
}

// GenerateDataJS перечитывает каталог и перезаписывает data.js для Mini App
func (s *Catalog) GenerateDataJS(ctx context.Context) error {
	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	return s.exporter.Export(categories, products)
}

// categoryHead и productHead поля записей каталога, нужные для статистики
type categoryHead struct {
	ID   model.Number `json:"id"`
	Name model.Text   `json:"name"`
}

type productHead struct {
	CategoryID model.Number `json:"categoryId"`
}

// GetCategoryStats считает товары по категориям в порядке категорий.
// Товары с несуществующей или пустой категорией попадают в "Без категории".
func (s *Catalog) GetCategoryStats(ctx context.Context) ([]model.CategoryStats, error) {
	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	stats := make([]model.CategoryStats, 0, len(categories)+1)
	index := make(map[float64]int, len(categories))
	for _, rec := range categories {
		var cat categoryHead
		if err := json.Unmarshal(rec, &cat); err != nil {
			continue
		}
		if cat.ID.Valid {
			index[cat.ID.Value] = len(stats)
		}
		stats = append(stats, model.CategoryStats{CategoryID: int64(cat.ID.Value), Name: string(cat.Name)})
	}

	orphans := 0
	for _, rec := range products {
		var p productHead
		if err := json.Unmarshal(rec, &p); err != nil || !p.CategoryID.Valid {
			orphans++
			continue
		}
		i, ok := index[p.CategoryID.Value]
		if !ok {
			orphans++
			continue
		}
		stats[i].Count++
	}
	if orphans > 0 {
		stats = append(stats, model.CategoryStats{Name: "Без категории", Count: orphans})
	}
	return stats, nil
}
