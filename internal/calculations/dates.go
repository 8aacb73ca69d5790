package calculations

import (
	"fmt"
	"time"
)

// DateLayout формат дат в графике и выгрузках
const DateLayout = "2006-01-02"

// ParseDate разбирает дату в формате YYYY-MM-DD (UTC, без времени)
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("дата %q должна быть в формате YYYY-MM-DD", s)
	}
	return d, nil
}

// Day отбрасывает время суток, оставляя календарную дату в UTC
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
