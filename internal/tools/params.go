package tools

import (
	"fmt"
	"time"

	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"github.com/cloud-ru/rou-lease-go/internal/config"
)

func invalidParam(key string) error {
	return fmt.Errorf("invalid parameter: %s: %w", key, calculations.ErrInvalidInput)
}

// floatParam читает число; отсутствующий параметр заменяется значением по умолчанию
func floatParam(params map[string]interface{}, key string, def float64) (float64, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return def, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, invalidParam(key)
}

func requiredFloatParam(params map[string]interface{}, key string) (float64, error) {
	if _, ok := params[key]; !ok {
		return 0, fmt.Errorf("missing parameter: %s: %w", key, calculations.ErrInvalidInput)
	}
	return floatParam(params, key, 0)
}

// intParam принимает только целые значения: 12.5 месяцев - ошибка
func intParam(params map[string]interface{}, key string, def int) (int, error) {
	f, err := floatParam(params, key, float64(def))
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, invalidParam(key)
	}
	return int(f), nil
}

func dateParam(params map[string]interface{}, key string, def time.Time) (time.Time, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, invalidParam(key)
	}
	d, err := calculations.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %v: %w", key, err, calculations.ErrInvalidInput)
	}
	return d, nil
}

// frequencyParam принимает payments_per_year числом или frequency именем ("quarterly")
func frequencyParam(params map[string]interface{}, def int) (int, error) {
	if v, ok := params["frequency"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return 0, invalidParam("frequency")
		}
		f, err := calculations.ParseFrequency(s)
		if err != nil {
			return 0, fmt.Errorf("frequency: %v: %w", err, calculations.ErrInvalidInput)
		}
		return int(f), nil
	}
	return intParam(params, "payments_per_year", def)
}

// LeaseInputsFromParams собирает параметры аренды, недостающие берутся из значений формы по умолчанию
func LeaseInputsFromParams(cfg *config.Config, params map[string]interface{}, now time.Time) (calculations.LeaseInputs, error) {
	in := cfg.Defaults.Inputs(now)
	var err error

	if in.PaymentAmount, err = floatParam(params, "payment_amount", in.PaymentAmount); err != nil {
		return in, err
	}
	if in.DiscountRateAnnual, err = floatParam(params, "discount_rate_annual", in.DiscountRateAnnual); err != nil {
		return in, err
	}
	if in.PaymentsPerYear, err = frequencyParam(params, in.PaymentsPerYear); err != nil {
		return in, err
	}
	if in.TermYears, err = floatParam(params, "term_years", in.TermYears); err != nil {
		return in, err
	}
	if in.ResidualValue, err = floatParam(params, "residual_value", in.ResidualValue); err != nil {
		return in, err
	}
	if in.InitialDirectCosts, err = floatParam(params, "initial_direct_costs", in.InitialDirectCosts); err != nil {
		return in, err
	}
	if in.StartDate, err = dateParam(params, "start_date", in.StartDate); err != nil {
		return in, err
	}
	return in, nil
}
