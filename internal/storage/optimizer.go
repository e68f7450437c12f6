package storage

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// Optimizer уменьшает картинки, у которых ширина или высота больше maxDim.
// Файлы, которые не удалось декодировать, сохраняются как есть.
type Optimizer struct {
	maxDim int
}

// NewOptimizer при maxDim <= 0 возвращает выключенный оптимизатор
func NewOptimizer(maxDim int) *Optimizer {
	return &Optimizer{maxDim: maxDim}
}

func (o *Optimizer) Enabled() bool {
	return o != nil && o.maxDim > 0
}

// Optimize возвращает уменьшенную картинку в том же формате или исходные данные
func (o *Optimizer) Optimize(name string, data []byte) []byte {
	if !o.Enabled() {
		return data
	}

	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return data
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= o.maxDim && bounds.Dy() <= o.maxDim {
		return data
	}

	resized := imaging.Fit(img, o.maxDim, o.maxDim, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return data
	}
	return buf.Bytes()
}
