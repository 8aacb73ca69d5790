package calculations

import "time"

// LeaseInputs представляет параметры договора аренды
type LeaseInputs struct {
	PaymentAmount      float64
	DiscountRateAnnual float64
	PaymentsPerYear    int
	TermYears          float64
	ResidualValue      float64
	InitialDirectCosts float64
	StartDate          time.Time
}

// TermMonths возвращает срок аренды в целых месяцах (дробная часть отбрасывается)
func (in LeaseInputs) TermMonths() int {
	return int(in.TermYears * 12)
}

// CarryingValue представляет первоначальную стоимость актива в форме права пользования
type CarryingValue struct {
	PresentValueOfPayments float64 `json:"present_value_of_payments"`
	InitialDirectCosts     float64 `json:"initial_direct_costs"`
	TotalInitialValue      float64 `json:"total_initial_value"`
}

// ScheduleEntry представляет одну запись графика амортизации
type ScheduleEntry struct {
	Month              int       `json:"month"`
	Date               time.Time `json:"date"`
	BookValue          float64   `json:"book_value"`
	PeriodDepreciation float64   `json:"period_depreciation"`
}

// Summary представляет сводку по амортизации
type Summary struct {
	TermMonths          int     `json:"term_months"`
	Periods             int     `json:"periods"`
	TotalDepreciation   float64 `json:"total_depreciation"`
	MonthlyDepreciation float64 `json:"monthly_depreciation"`
}

// LeaseResult представляет полный результат расчета по договору аренды
type LeaseResult struct {
	CarryingValue CarryingValue   `json:"carrying_value"`
	Schedule      []ScheduleEntry `json:"schedule"`
	Summary       Summary         `json:"summary"`
}
