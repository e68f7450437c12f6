package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivanoskov/shop_bot/internal/model"
)

const dataJSHeader = "// Этот файл сгенерирован автоматически из каталога Smokelab\n"

// Exporter собирает data.js для Mini App.
// HTTP-эндпоинт и утилита cmd/export используют один и тот же Exporter.
type Exporter struct {
	baseURL string
	path    string
}

func NewExporter(baseURL, path string) *Exporter {
	return &Exporter{
		baseURL: baseURL,
		path:    path,
	}
}

func (e *Exporter) Path() string {
	return e.path
}

// Export записывает data.js, создавая каталог при необходимости
func (e *Exporter) Export(categories, products []model.Record) error {
	content, err := e.Render(categories, products)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(e.path), err)
	}
	if err := os.WriteFile(e.path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.path, err)
	}
	return nil
}

// Render возвращает содержимое data.js: две JS-переменные с категориями и товарами.
// В записях меняется только строковое поле img, остальные поля и порядок ключей сохраняются.
func (e *Exporter) Render(categories, products []model.Record) ([]byte, error) {
	cats := make([]model.Record, len(categories))
	for i, rec := range categories {
		cats[i] = e.rewriteImg(rec)
	}
	prods := make([]model.Record, len(products))
	for i, rec := range products {
		prods[i] = e.rewriteImg(rec)
	}

	catsJSON, err := marshalJS(cats)
	if err != nil {
		return nil, fmt.Errorf("failed to encode categories: %w", err)
	}
	prodsJSON, err := marshalJS(prods)
	if err != nil {
		return nil, fmt.Errorf("failed to encode products: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(dataJSHeader)
	buf.WriteString("const categories = ")
	buf.Write(catsJSON)
	buf.WriteString(";\n\nconst products = ")
	buf.Write(prodsJSON)
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}

// ToFullURL приводит путь от корня сервера к полному URL.
// Полные http(s) URL, пустые и прочие относительные пути не меняются.
func ToFullURL(baseURL, img string) string {
	switch {
	case img == "":
		return ""
	case strings.HasPrefix(img, "http://"), strings.HasPrefix(img, "https://"):
		return img
	case strings.HasPrefix(img, "/"):
		return baseURL + img
	default:
		return img
	}
}

func marshalJS(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// field пара ключ-значение JSON-объекта
type field struct {
	key   string
	value json.RawMessage
}

// rewriteImg возвращает запись с полным URL в img. Записи, которые не являются
// объектами или где img не строка, возвращаются без изменений.
func (e *Exporter) rewriteImg(rec model.Record) model.Record {
	fields, ok := objectFields(rec)
	if !ok {
		return rec
	}

	changed := false
	for i, f := range fields {
		if f.key != "img" {
			continue
		}
		value := bytes.TrimSpace(f.value)
		if len(value) == 0 || value[0] != '"' {
			continue
		}
		var img string
		if err := json.Unmarshal(value, &img); err != nil {
			continue
		}
		full := ToFullURL(e.baseURL, img)
		if full == img {
			continue
		}
		encoded, err := marshalJS(full)
		if err != nil {
			continue
		}
		fields[i].value = encoded
		changed = true
	}
	if !changed {
		return rec
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := marshalJS(f.key)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// objectFields разбирает JSON-объект на поля в исходном порядке
func objectFields(rec model.Record) ([]field, bool) {
	dec := json.NewDecoder(bytes.NewReader(rec))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, false
	}

	var fields []field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		fields = append(fields, field{key: key, value: value})
	}
	return fields, true
}
