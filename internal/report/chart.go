package report

import (
	"fmt"
	"strings"

	"github.com/cloud-ru/rou-lease-go/internal/calculations"
)

// ChartTitle подпись графика балансовой стоимости
const ChartTitle = "Right-of-use asset book value over time"

// ChartPoint точка линейного графика балансовой стоимости
type ChartPoint struct {
	Date      string  `json:"date"`
	BookValue float64 `json:"book_value"`
}

// ChartSeries возвращает ряд "дата - балансовая стоимость" для линейного графика
func ChartSeries(schedule []calculations.ScheduleEntry) []ChartPoint {
	points := make([]ChartPoint, 0, len(schedule))
	for _, e := range schedule {
		points = append(points, ChartPoint{
			Date:      e.Date.Format(calculations.DateLayout),
			BookValue: e.BookValue,
		})
	}
	return points
}

const (
	svgWidth   = 720
	svgHeight  = 320
	svgPadding = 40
)

// SVGLineChart рисует ряд ломаной линией. Пустой ряд дает пустую строку.
func SVGLineChart(points []ChartPoint) string {
	if len(points) == 0 {
		return ""
	}

	lo, hi := points[0].BookValue, points[0].BookValue
	for _, p := range points {
		if p.BookValue < lo {
			lo = p.BookValue
		}
		if p.BookValue > hi {
			hi = p.BookValue
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	plotW := float64(svgWidth - 2*svgPadding)
	plotH := float64(svgHeight - 2*svgPadding)
	step := 0.0
	if len(points) > 1 {
		step = plotW / float64(len(points)-1)
	}

	coords := make([]string, 0, len(points))
	for i, p := range points {
		x := float64(svgPadding) + step*float64(i)
		y := float64(svgPadding) + plotH*(hi-p.BookValue)/span
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-label="%s">`,
		svgWidth, svgHeight, ChartTitle)
	fmt.Fprintf(&b, `<text x="%d" y="20" font-size="14">%s</text>`, svgPadding, ChartTitle)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10">%s</text>`, svgPadding, svgPadding-4, FormatMoney(hi))
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10">%s</text>`, svgPadding, svgHeight-svgPadding+12, FormatMoney(lo))
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10">%s</text>`, svgPadding, svgHeight-8, points[0].Date)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10" text-anchor="end">%s</text>`,
		svgWidth-svgPadding, svgHeight-8, points[len(points)-1].Date)
	fmt.Fprintf(&b, `<polyline fill="none" stroke="#1f77b4" stroke-width="2" points="%s"/>`, strings.Join(coords, " "))
	b.WriteString(`</svg>`)
	return b.String()
}
