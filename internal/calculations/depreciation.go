package calculations

import (
	"fmt"
	"time"

	"github.com/cloud-ru/rou-lease-go/pkg/utils"
)

// DaysPerMonth месяц графика всегда равен 30 дням, даты не выравниваются по календарю
const DaysPerMonth = 30

// MonthlyDepreciation рассчитывает линейную амортизацию за месяц
func MonthlyDepreciation(initialValue, residualValue float64, termMonths int) (float64, error) {
	if termMonths <= 0 {
		return 0, fmt.Errorf("срок амортизации %d мес.: %w", termMonths, ErrDivisionByZero)
	}
	return (initialValue - residualValue) / float64(termMonths), nil
}

// DepreciationSchedule строит линейный график амортизации.
// Текущая стоимость уменьшается без округления, округляется только каждая запись.
func DepreciationSchedule(initialValue, residualValue float64, termMonths int, startDate time.Time) ([]ScheduleEntry, error) {
	monthly, err := MonthlyDepreciation(initialValue, residualValue, termMonths)
	if err != nil {
		return nil, err
	}

	schedule := make([]ScheduleEntry, 0, termMonths)
	current := initialValue
	periodDepreciation := utils.Round2(monthly)

	for m := 0; m < termMonths; m++ {
		current -= monthly
		schedule = append(schedule, ScheduleEntry{
			Month:              m + 1,
			Date:               startDate.AddDate(0, 0, DaysPerMonth*m),
			BookValue:          utils.Round2(current),
			PeriodDepreciation: periodDepreciation,
		})
	}

	return schedule, nil
}
