package calculations

import "fmt"

// ComputeSummary рассчитывает стоимость актива, график амортизации и сводку за один проход
func ComputeSummary(inputs LeaseInputs) (*LeaseResult, error) {
	termMonths := inputs.TermMonths()

	pv, err := PresentValue(inputs.PaymentAmount, inputs.DiscountRateAnnual, inputs.PaymentsPerYear, inputs.TermYears)
	if err != nil {
		return nil, fmt.Errorf("приведенная стоимость: %w", err)
	}

	carrying := CarryingValue{
		PresentValueOfPayments: pv,
		InitialDirectCosts:     inputs.InitialDirectCosts,
		TotalInitialValue:      pv + inputs.InitialDirectCosts,
	}

	schedule, err := DepreciationSchedule(carrying.TotalInitialValue, inputs.ResidualValue, termMonths, inputs.StartDate)
	if err != nil {
		return nil, fmt.Errorf("график амортизации: %w", err)
	}

	// Сводка считается заново по той же формуле, а не берется из графика
	totalDepreciation := carrying.TotalInitialValue - inputs.ResidualValue
	summary := Summary{
		TermMonths:          termMonths,
		Periods:             Periods(inputs.PaymentsPerYear, inputs.TermYears),
		TotalDepreciation:   totalDepreciation,
		MonthlyDepreciation: totalDepreciation / float64(termMonths),
	}

	return &LeaseResult{
		CarryingValue: carrying,
		Schedule:      schedule,
		Summary:       summary,
	}, nil
}
