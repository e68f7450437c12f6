package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number число из недоверенного JSON. Принимает число или строку с числом,
// любое другое значение считается отсутствующим. Ошибку разбора не возвращает.
type Number struct {
	Value float64
	Valid bool
}

func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch x := v.(type) {
	case float64:
		*n = NewNumber(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			*n = NewNumber(f)
		}
	}
	return nil
}

// Or возвращает def для отсутствующего или нулевого значения
func (n Number) Or(def float64) float64 {
	if !n.Valid || n.Value == 0 {
		return def
	}
	return n.Value
}

// Text строка из недоверенного JSON. Число сохраняется как текст,
// остальные значения считаются пустой строкой.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch x := v.(type) {
	case string:
		*t = Text(x)
	case float64:
		*t = Text(strconv.FormatFloat(x, 'f', -1, 64))
	}
	return nil
}

// Or возвращает def для пустой строки
func (t Text) Or(def string) string {
	if t == "" {
		return def
	}
	return string(t)
}
