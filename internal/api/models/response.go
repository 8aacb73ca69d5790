package models

import (
	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"github.com/cloud-ru/rou-lease-go/internal/report"
	"github.com/cloud-ru/rou-lease-go/pkg/utils"
)

// LeaseResponse ответ расчета, денежные значения округлены до копеек
type LeaseResponse struct {
	ID            string              `json:"id"`
	Inputs        LeaseInputs         `json:"inputs"`
	CarryingValue CarryingValue       `json:"carrying_value"`
	Summary       Summary             `json:"summary"`
	Schedule      []ScheduleRow       `json:"schedule"`
	Chart         []report.ChartPoint `json:"chart"`
}

// LeaseInputs параметры, с которыми выполнен расчет
type LeaseInputs struct {
	PaymentAmount      float64 `json:"payment_amount"`
	Frequency          string  `json:"frequency"`
	PaymentsPerYear    int     `json:"payments_per_year"`
	DiscountRateAnnual float64 `json:"discount_rate_annual"`
	TermYears          float64 `json:"term_years"`
	ResidualValue      float64 `json:"residual_value"`
	InitialDirectCosts float64 `json:"initial_direct_costs"`
	StartDate          string  `json:"start_date"`
}

// CarryingValue первоначальная стоимость актива
type CarryingValue struct {
	PresentValueOfPayments float64 `json:"present_value_of_payments"`
	InitialDirectCosts     float64 `json:"initial_direct_costs"`
	TotalInitialValue      float64 `json:"total_initial_value"`
}

// Summary сводка по амортизации
type Summary struct {
	TermMonths          int     `json:"term_months"`
	Periods             int     `json:"periods"`
	TotalDepreciation   float64 `json:"total_depreciation"`
	MonthlyDepreciation float64 `json:"monthly_depreciation"`
}

// ScheduleRow строка графика амортизации
type ScheduleRow struct {
	Month              int     `json:"month"`
	Date               string  `json:"date"`
	BookValue          float64 `json:"book_value"`
	PeriodDepreciation float64 `json:"period_depreciation"`
}

// DefaultsResponse значения формы по умолчанию и допустимые частоты
type DefaultsResponse struct {
	PaymentAmount      float64  `json:"payment_amount"`
	Frequency          string   `json:"frequency"`
	PaymentsPerYear    int      `json:"payments_per_year"`
	DiscountRateAnnual float64  `json:"discount_rate_annual"`
	TermYears          float64  `json:"term_years"`
	ResidualValue      float64  `json:"residual_value"`
	InitialDirectCosts float64  `json:"initial_direct_costs"`
	StartDate          string   `json:"start_date"`
	Frequencies        []string `json:"frequencies"`
}

// ToolResponse результат вызова инструмента
type ToolResponse struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail код и текст ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewLeaseResponse переводит результат ядра в ответ API; округление только здесь
func NewLeaseResponse(id string, in calculations.LeaseInputs, result *calculations.LeaseResult) LeaseResponse {
	rows := make([]ScheduleRow, 0, len(result.Schedule))
	for _, e := range result.Schedule {
		rows = append(rows, ScheduleRow{
			Month:              e.Month,
			Date:               e.Date.Format(calculations.DateLayout),
			BookValue:          e.BookValue,
			PeriodDepreciation: e.PeriodDepreciation,
		})
	}

	return LeaseResponse{
		ID: id,
		Inputs: LeaseInputs{
			PaymentAmount:      in.PaymentAmount,
			Frequency:          calculations.PaymentFrequency(in.PaymentsPerYear).String(),
			PaymentsPerYear:    in.PaymentsPerYear,
			DiscountRateAnnual: in.DiscountRateAnnual,
			TermYears:          in.TermYears,
			ResidualValue:      in.ResidualValue,
			InitialDirectCosts: in.InitialDirectCosts,
			StartDate:          in.StartDate.Format(calculations.DateLayout),
		},
		CarryingValue: CarryingValue{
			PresentValueOfPayments: utils.Round2(result.CarryingValue.PresentValueOfPayments),
			InitialDirectCosts:     utils.Round2(result.CarryingValue.InitialDirectCosts),
			TotalInitialValue:      utils.Round2(result.CarryingValue.TotalInitialValue),
		},
		Summary: Summary{
			TermMonths:          result.Summary.TermMonths,
			Periods:             result.Summary.Periods,
			TotalDepreciation:   utils.Round2(result.Summary.TotalDepreciation),
			MonthlyDepreciation: utils.Round2(result.Summary.MonthlyDepreciation),
		},
		Schedule: rows,
		Chart:    report.ChartSeries(result.Schedule),
	}
}
