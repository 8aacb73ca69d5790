package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/cloud-ru/rou-lease-go/internal/calculations"
)

// CSVFileName имя файла выгрузки по умолчанию
const CSVFileName = "depreciation_schedule.csv"

var csvHeader = []string{"date", "book_value", "period_depreciation"}

// WriteScheduleCSV пишет график амортизации: дата, балансовая стоимость, амортизация за период
func WriteScheduleCSV(w io.Writer, schedule []calculations.ScheduleEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range schedule {
		row := []string{
			e.Date.Format(calculations.DateLayout),
			Fixed2(e.BookValue),
			Fixed2(e.PeriodDepreciation),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteScheduleCSVFile пишет выгрузку в файл, создавая каталог при необходимости
func WriteScheduleCSVFile(path string, schedule []calculations.ScheduleEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteScheduleCSV(f, schedule); err != nil {
		return err
	}
	return f.Close()
}
