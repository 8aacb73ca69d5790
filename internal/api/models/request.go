package models

// LeaseRequest тело запроса расчета. Незаданные поля берутся из пресета или значений формы по умолчанию.
type LeaseRequest struct {
	Preset             string   `json:"preset,omitempty"`
	PaymentAmount      *float64 `json:"payment_amount,omitempty"`
	Frequency          string   `json:"frequency,omitempty"` // annual, semiannual, quarterly, monthly
	PaymentsPerYear    *int     `json:"payments_per_year,omitempty"`
	DiscountRateAnnual *float64 `json:"discount_rate_annual,omitempty"` // доля: 0.05 = 5%
	TermYears          *float64 `json:"term_years,omitempty"`
	ResidualValue      *float64 `json:"residual_value,omitempty"`
	InitialDirectCosts *float64 `json:"initial_direct_costs,omitempty"`
	StartDate          string   `json:"start_date,omitempty"` // YYYY-MM-DD, по умолчанию сегодня
}

// ToolRequest тело запроса вызова инструмента по имени
type ToolRequest struct {
	Params map[string]interface{} `json:"params"`
}
