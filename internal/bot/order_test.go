package bot

import (
	"testing"

	"github.com/ivanoskov/shop_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOrder(t *testing.T) {
	order, err := ParseOrder(`{
		"user": {"id": 42, "username": "ivan", "first_name": "Иван"},
		"items": [{"name": "Juice", "qty": 2, "price": 5}, {"name": "Pod", "price": 1200}],
		"total": 1210,
		"delivery": "Самовывоз",
		"payment": "Наличные",
		"contactName": "Иван",
		"contactPhone": "+79990000000",
		"comment": "после 18:00"
	}`)
	require.NoError(t, err)
	order.Ref = "AB12CD34"

	want := "Новый заказ! #AB12CD34\n\n" +
		"От: @ivan (Иван)\n" +
		"ID: 42\n\n" +
		"• Juice x2 — 10 ₽\n" +
		"• Pod x1 — 1200 ₽\n\n" +
		"Итого: 1210 ₽\n\n" +
		"Доставка: Самовывоз\n" +
		"Оплата: Наличные\n" +
		"Имя: Иван\n" +
		"Телефон: +79990000000\n" +
		"Комментарий: после 18:00"
	assert.Equal(t, want, FormatOrder(order))
}

func TestFormatOrderDefaults(t *testing.T) {
	order, err := ParseOrder(`{}`)
	require.NoError(t, err)

	text := FormatOrder(order)
	assert.Contains(t, text, "От: @no_username (без имени)")
	assert.Contains(t, text, "ID: не указан")
	assert.Contains(t, text, "Итого: 0 ₽")
	assert.Contains(t, text, "Доставка: не указано")
	assert.Contains(t, text, "Комментарий: —")
}

func TestOrderLineDefaults(t *testing.T) {
	tests := []struct {
		name string
		item model.OrderItem
		want string
	}{
		{"missing qty and price", model.OrderItem{Name: "A"}, "• A x1 — 0 ₽"},
		{"zero qty", model.OrderItem{Name: "B", Qty: model.NewNumber(0), Price: model.NewNumber(3)}, "• B x1 — 3 ₽"},
		{"fractional price", model.OrderItem{Name: "C", Qty: model.NewNumber(3), Price: model.NewNumber(0.5)}, "• C x3 — 1.5 ₽"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := FormatOrder(&model.Order{Items: []model.OrderItem{tt.item}})
			assert.Contains(t, text, tt.want+"\n")
		})
	}
}

func TestFormatOrderStringNumbers(t *testing.T) {
	order, err := ParseOrder(`{
		"user": {"id": "42", "username": "ivan"},
		"items": [{"name": "Juice", "qty": "2", "price": "5"}, {"name": "Pod", "qty": "много", "price": 3}],
		"total": "13"
	}`)
	require.NoError(t, err)

	text := FormatOrder(order)
	assert.Contains(t, text, "ID: 42\n")
	assert.Contains(t, text, "• Juice x2 — 10 ₽\n")
	assert.Contains(t, text, "• Pod x1 — 3 ₽\n")
	assert.Contains(t, text, "Итого: 13 ₽\n")
}

func TestFormatOrderIgnoresUnexpectedTypes(t *testing.T) {
	order, err := ParseOrder(`{"user": [1], "total": {"sum": 5}, "delivery": true, "comment": 7}`)
	require.NoError(t, err)

	text := FormatOrder(order)
	assert.Contains(t, text, "От: @no_username (без имени)")
	assert.Contains(t, text, "Итого: 0 ₽")
	assert.Contains(t, text, "Доставка: не указано")
	assert.Contains(t, text, "Комментарий: 7")
}

func TestParseOrderRejectsNonObjects(t *testing.T) {
	for _, data := range []string{"", "null", "[1]", `"order"`, `{"items": "Juice"}`} {
		_, err := ParseOrder(data)
		assert.Error(t, err, data)
	}
}
