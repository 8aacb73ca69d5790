package report

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const reportTitle = "Right-of-use asset depreciation"

// Markdown формирует отчет: стоимость актива, таблица графика, сводка
func Markdown(result *calculations.LeaseResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", reportTitle)

	b.WriteString("## Initial carrying value\n\n")
	fmt.Fprintf(&b, "- Present value of lease payments: %s\n", FormatMoney(result.CarryingValue.PresentValueOfPayments))
	fmt.Fprintf(&b, "- Initial direct costs: %s\n", FormatMoney(result.CarryingValue.InitialDirectCosts))
	fmt.Fprintf(&b, "- Right-of-use asset carrying value: %s\n\n", FormatMoney(result.CarryingValue.TotalInitialValue))

	b.WriteString("## Depreciation schedule\n\n")
	b.WriteString("| Month | Date | Book value | Depreciation |\n")
	b.WriteString("|---:|---|---:|---:|\n")
	for _, e := range result.Schedule {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			e.Month,
			e.Date.Format(calculations.DateLayout),
			FormatMoney(e.BookValue),
			FormatMoney(e.PeriodDepreciation),
		)
	}

	b.WriteString("\n## Summary\n\n")
	fmt.Fprintf(&b, "- Term: %d months\n", result.Summary.TermMonths)
	fmt.Fprintf(&b, "- Total depreciation: %s\n", FormatMoney(result.Summary.TotalDepreciation))
	fmt.Fprintf(&b, "- Monthly depreciation: %s\n", FormatMoney(result.Summary.MonthlyDepreciation))

	return b.String()
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML рендерит отчет в самостоятельную HTML страницу с графиком балансовой стоимости
func HTML(result *calculations.LeaseResult) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(result)), &body); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(reportTitle))
	page.WriteString("<style>table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:2px 8px}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString(SVGLineChart(ChartSeries(result.Schedule)))
	page.WriteString("\n</body>\n</html>\n")
	return page.Bytes(), nil
}

// WriteHTMLFile пишет HTML отчет в файл, создавая каталог при необходимости
func WriteHTMLFile(path string, result *calculations.LeaseResult) error {
	page, err := HTML(result)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, page, 0o644)
}
