package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ivanoskov/shop_bot/internal/model"
	"github.com/ivanoskov/shop_bot/internal/repository"
)

const (
	fallbackCategoryName = "Другие"
	fallbackProductName  = "Без названия"
)

// Migration результат перехода со строкового поля category на categoryId
type Migration struct {
	Categories []model.Category
	Products   []model.Product
}

// LegacyProduct товар в исходном виде, ключи сохраняются для проверки наличия полей
type LegacyProduct map[string]json.RawMessage

// ParseLegacyProducts разбирает products.json старого формата
func ParseLegacyProducts(data []byte) ([]LegacyProduct, error) {
	if !repository.IsJSONArray(data) {
		return nil, repository.ErrNotArray
	}
	var items []LegacyProduct
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("product #%d is not an object", i)
		}
	}
	return items, nil
}

// NeedsMigration true, если хотя бы у одного товара строковое поле category
// или нет поля categoryId
func NeedsMigration(items []LegacyProduct) bool {
	for _, item := range items {
		if _, ok := item.stringField("category"); ok {
			return true
		}
		if _, ok := item["categoryId"]; !ok {
			return true
		}
	}
	return false
}

// MigrateProducts строит категории из названий и переписывает товары на categoryId.
// Возвращает nil, если данные уже в новом формате.
func MigrateProducts(items []LegacyProduct) *Migration {
	if !NeedsMigration(items) {
		return nil
	}

	ids := make(map[string]int64)
	categories := make([]model.Category, 0)
	products := make([]model.Product, len(items))
	for i, item := range items {
		name := item.categoryName()
		id, ok := ids[name]
		if !ok {
			id = int64(len(categories) + 1)
			ids[name] = id
			categories = append(categories, model.Category{ID: id, Name: name, Img: ""})
		}

		p := item.toProduct()
		p.CategoryID = &id
		products[i] = p
	}

	return &Migration{
		Categories: categories,
		Products:   products,
	}
}

func (p LegacyProduct) categoryName() string {
	if s, ok := p.stringField("category"); ok {
		if name := strings.TrimSpace(s); name != "" {
			return name
		}
	}
	return fallbackCategoryName
}

// toProduct переносит значения полей без приведения типов
func (p LegacyProduct) toProduct() model.Product {
	return model.Product{
		ID:    p["id"],
		Name:  p.valueOr("name", json.RawMessage(`"`+fallbackProductName+`"`)),
		Price: p.valueOr("price", json.RawMessage(`0`)),
		Img:   p.valueOr("img", json.RawMessage(`""`)),
		Ml:    p.valueOr("ml", json.RawMessage(`""`)),
		Nic:   p.valueOr("nic", json.RawMessage(`""`)),
	}
}

// valueOr возвращает def вместо отсутствующего, null, false, 0 или ""
func (p LegacyProduct) valueOr(key string, def json.RawMessage) json.RawMessage {
	raw, ok := p[key]
	if !ok {
		return def
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	switch x := v.(type) {
	case nil:
		return def
	case bool:
		if !x {
			return def
		}
	case float64:
		if x == 0 {
			return def
		}
	case string:
		if x == "" {
			return def
		}
	}
	return raw
}

func (p LegacyProduct) stringField(key string) (string, bool) {
	raw, ok := p[key]
	if !ok || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
