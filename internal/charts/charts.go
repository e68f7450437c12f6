package charts

import (
	"bytes"
	"fmt"

	"github.com/ivanoskov/shop_bot/internal/model"
	"github.com/wcharczuk/go-chart/v2"
)

// ChartGenerator генерирует графики по каталогу
type ChartGenerator struct{}

// NewChartGenerator создает новый генератор графиков
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// GenerateCategoryPieChart создает круговую диаграмму количества товаров по категориям.
// Возвращает nil, если ни в одной категории нет товаров.
func (g *ChartGenerator) GenerateCategoryPieChart(stats []model.CategoryStats) ([]byte, error) {
	total := 0
	for _, s := range stats {
		total += s.Count
	}
	if total == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(stats))
	for _, s := range stats {
		if s.Count == 0 {
			continue
		}
		percentage := float64(s.Count) / float64(total) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %d (%.1f%%)", s.Name, s.Count, percentage),
			Value: float64(s.Count),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}

	pie := chart.PieChart{
		Title:  "Товары по категориям",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category pie chart: %w", err)
	}

	return buffer.Bytes(), nil
}
