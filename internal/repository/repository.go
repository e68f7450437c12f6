package repository

import (
	"context"
	"errors"

	"github.com/ivanoskov/shop_bot/internal/model"
)

// ErrNotArray документ каталога не является JSON-массивом
var ErrNotArray = errors.New("document must be a JSON array")

// Repository хранилище каталога. Коллекции читаются и перезаписываются целиком,
// элементы хранятся в исходном JSON без проверки полей.
type Repository interface {
	// Категории
	LoadCategories(ctx context.Context) ([]model.Record, error)
	SaveCategories(ctx context.Context, categories []model.Record) error

	// Товары
	LoadProducts(ctx context.Context) ([]model.Record, error)
	SaveProducts(ctx context.Context, products []model.Record) error
}
