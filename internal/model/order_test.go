package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemQuantity(t *testing.T) {
	tests := []struct {
		name  string
		item  OrderItem
		qty   float64
		total float64
	}{
		{name: "explicit", item: OrderItem{Qty: NewNumber(3), Price: NewNumber(10)}, qty: 3, total: 30},
		{name: "zero qty", item: OrderItem{Qty: NewNumber(0), Price: NewNumber(7)}, qty: 1, total: 7},
		{name: "missing qty", item: OrderItem{Price: NewNumber(4)}, qty: 1, total: 4},
		{name: "no price", item: OrderItem{Qty: NewNumber(2)}, qty: 2, total: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.qty, tt.item.Quantity())
			assert.Equal(t, tt.total, tt.item.LineTotal())
		})
	}
}

func TestOrderGenerateRef(t *testing.T) {
	var o Order
	o.GenerateRef()
	assert.Regexp(t, `^[0-9A-F]{8}$`, o.Ref)

	ref := o.Ref
	o.GenerateRef()
	assert.Equal(t, ref, o.Ref)
}

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		data string
		want Number
	}{
		{`2`, NewNumber(2)},
		{`1.5`, NewNumber(1.5)},
		{`"2"`, NewNumber(2)},
		{`" 450 "`, NewNumber(450)},
		{`"two"`, Number{}},
		{`"NaN"`, Number{}},
		{`""`, Number{}},
		{`null`, Number{}},
		{`true`, Number{}},
		{`{"a":1}`, Number{}},
		{`[1]`, Number{}},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.data), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestTextUnmarshal(t *testing.T) {
	tests := []struct {
		data string
		want Text
	}{
		{`"ivan"`, "ivan"},
		{`42`, "42"},
		{`123456789012`, "123456789012"},
		{`null`, ""},
		{`false`, ""},
		{`{"x":1}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			var s Text
			require.NoError(t, json.Unmarshal([]byte(tt.data), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestOrderUnmarshalLenient(t *testing.T) {
	var o Order
	err := json.Unmarshal([]byte(`{
		"user": {"id": "42", "username": 7},
		"items": [{"name": "Juice", "qty": "2", "price": "5"}, 5, {"qty": "x"}],
		"total": "10",
		"comment": {"text": "hi"}
	}`), &o)
	require.NoError(t, err)

	assert.Equal(t, Text("42"), o.User.ID)
	assert.Equal(t, Text("7"), o.User.Username)
	require.Len(t, o.Items, 3)
	assert.Equal(t, 2.0, o.Items[0].Quantity())
	assert.Equal(t, 10.0, o.Items[0].LineTotal())
	assert.Equal(t, OrderItem{}, o.Items[1])
	assert.Equal(t, 1.0, o.Items[2].Quantity())
	assert.Equal(t, 10.0, o.Total.Or(0))
	assert.Equal(t, "—", o.Comment.Or("—"))
}

func TestOrderUserNotObject(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"user": "ivan"}`), &o))
	assert.Equal(t, OrderUser{}, o.User)
}
