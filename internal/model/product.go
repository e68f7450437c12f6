package model

import "encoding/json"

// Record элемент коллекции каталога в исходном JSON. Набор полей не фиксирован:
// поля, которые добавляет админка, сохраняются и отдаются без изменений.
type Record = json.RawMessage

// Product товар в формате после миграции. Значения полей переносятся из старого
// products.json как есть, подставляются только значения по умолчанию.
type Product struct {
	ID    json.RawMessage `json:"id,omitempty"`
	Name  json.RawMessage `json:"name"`
	Price json.RawMessage `json:"price"`
	Img   json.RawMessage `json:"img"`
	Ml    json.RawMessage `json:"ml"`
	Nic   json.RawMessage `json:"nic"`
	// CategoryID ссылается на Category.ID, существование категории не проверяется
	CategoryID *int64 `json:"categoryId"`
}

// CategoryStats количество товаров в категории
type CategoryStats struct {
	CategoryID int64
	Name       string
	Count      int
}
