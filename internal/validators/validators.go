package validators

import (
	"fmt"

	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"github.com/cloud-ru/rou-lease-go/internal/config"
	"github.com/cloud-ru/rou-lease-go/pkg/utils"
)

// Проверки на границе сервиса. Ядро расчета входные данные не проверяет,
// поэтому все отклонения от "как есть" собраны здесь.

func invalid(name, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", name, fmt.Sprintf(format, args...), calculations.ErrInvalidInput)
}

// ValidateRange проверяет, что число конечно и лежит в [minInclusive; maxInclusive]
func ValidateRange(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return invalid(name, "значение не является конечным числом")
	}
	if value < minInclusive {
		return invalid(name, "значение должно быть ≥ %g", minInclusive)
	}
	if value > maxInclusive {
		return invalid(name, "значение слишком велико (>%g)", maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return invalid(name, "значение должно быть в диапазоне [%d; %d]", minInclusive, maxInclusive)
	}
	return nil
}

// CheckPaymentAmount проверяет сумму платежа
func CheckPaymentAmount(cfg *config.Config, amount float64) error {
	return ValidateRange("payment_amount", amount, 0.0, cfg.MaxPaymentAmount)
}

// CheckDiscountRate проверяет годовую ставку дисконтирования (доля, 0.05 = 5%)
func CheckDiscountRate(cfg *config.Config, rate float64) error {
	return ValidateRange("discount_rate_annual", rate, 0.0, cfg.MaxDiscountRate)
}

// CheckPaymentsPerYear допускает только годовые, полугодовые, квартальные и ежемесячные платежи
func CheckPaymentsPerYear(paymentsPerYear int) error {
	if !calculations.PaymentFrequency(paymentsPerYear).Valid() {
		return invalid("payments_per_year", "допустимы значения 1, 2, 4, 12, получено %d", paymentsPerYear)
	}
	return nil
}

// CheckTermYears проверяет срок аренды. Срок короче месяца пропускается:
// ядро само вернет ErrDivisionByZero.
func CheckTermYears(cfg *config.Config, termYears float64) error {
	if err := ValidateRange("term_years", termYears, 0.0, cfg.MaxTermYears); err != nil {
		return err
	}
	if termYears == 0 {
		return invalid("term_years", "срок должен быть положительным")
	}
	return nil
}

// CheckTermMonths проверяет срок амортизации в месяцах
func CheckTermMonths(cfg *config.Config, termMonths int) error {
	return ValidateIntRange("term_months", termMonths, 0, int(cfg.MaxTermYears*12))
}

// CheckResidualValue проверяет остаточную стоимость
func CheckResidualValue(cfg *config.Config, residual float64) error {
	return ValidateRange("residual_value", residual, 0.0, cfg.MaxPaymentAmount)
}

// CheckInitialDirectCosts проверяет первоначальные прямые затраты
func CheckInitialDirectCosts(cfg *config.Config, costs float64) error {
	return ValidateRange("initial_direct_costs", costs, 0.0, cfg.MaxPaymentAmount)
}

// CheckInitialValue проверяет стоимость актива, переданную напрямую в график
func CheckInitialValue(cfg *config.Config, value float64) error {
	return ValidateRange("initial_value", value, 0.0, cfg.MaxPaymentAmount*cfg.MaxTermYears*12)
}

// CheckResidualAgainstCarrying не допускает остаточную стоимость выше стоимости актива,
// иначе амортизация становится отрицательной
func CheckResidualAgainstCarrying(residual, totalInitialValue float64) error {
	if residual > totalInitialValue {
		return invalid("residual_value", "остаточная стоимость %.2f превышает стоимость актива %.2f",
			residual, totalInitialValue)
	}
	return nil
}

// ValidateLeaseInputs проверяет все параметры аренды до расчета
func ValidateLeaseInputs(cfg *config.Config, in calculations.LeaseInputs) error {
	checks := []func() error{
		func() error { return CheckPaymentAmount(cfg, in.PaymentAmount) },
		func() error { return CheckDiscountRate(cfg, in.DiscountRateAnnual) },
		func() error { return CheckPaymentsPerYear(in.PaymentsPerYear) },
		func() error { return CheckTermYears(cfg, in.TermYears) },
		func() error { return CheckResidualValue(cfg, in.ResidualValue) },
		func() error { return CheckInitialDirectCosts(cfg, in.InitialDirectCosts) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	if in.StartDate.IsZero() {
		return invalid("start_date", "дата начала обязательна")
	}
	return nil
}
