package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"
)

// maxExtLen длина расширения вместе с точкой, длиннее отбрасывается
const maxExtLen = 6

// Store сохраняет загруженный файл под именем name и возвращает его публичный URL
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// Uploader присваивает файлам уникальные имена и при необходимости уменьшает картинки
type Uploader struct {
	store     Store
	optimizer *Optimizer
	now       func() time.Time
}

func NewUploader(store Store, optimizer *Optimizer) *Uploader {
	return &Uploader{
		store:     store,
		optimizer: optimizer,
		now:       time.Now,
	}
}

// Upload сохраняет файл с оригинальным именем originalName, возвращает URL
func (u *Uploader) Upload(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := GenerateName(originalName, u.now())

	if u.optimizer.Enabled() {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read upload: %w", err)
		}
		r = bytes.NewReader(u.optimizer.Optimize(name, data))
	}

	url, err := u.store.Save(ctx, name, r)
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", name, err)
	}
	return url, nil
}

// GenerateName возвращает имя вида <unix-ms>-<random><ext>
func GenerateName(originalName string, now time.Time) string {
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.Int64N(1_000_000_001), SafeExt(originalName))
}

// SafeExt расширение в нижнем регистре или пустая строка, если оно длиннее maxExtLen
func SafeExt(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if len(ext) > maxExtLen {
		return ""
	}
	return ext
}
