package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"github.com/cloud-ru/rou-lease-go/internal/config"
	"github.com/cloud-ru/rou-lease-go/internal/metrics"
	"github.com/cloud-ru/rou-lease-go/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	PresentValueTool = "rou_present_value"
	ScheduleTool     = "rou_depreciation_schedule"
	LeaseSummaryTool = "rou_lease_summary"
)

// ToolHandler представляет обработчик инструмента расчета
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// PresentValueResult результат инструмента rou_present_value
type PresentValueResult struct {
	PresentValue float64 `json:"present_value"`
	Periods      int     `json:"periods"`
	PeriodRate   float64 `json:"period_rate"`
}

// ScheduleResult результат инструмента rou_depreciation_schedule
type ScheduleResult struct {
	MonthlyDepreciation float64                      `json:"monthly_depreciation"`
	Schedule            []calculations.ScheduleEntry `json:"schedule"`
}

// Registry возвращает все инструменты по именам
func Registry(cfg *config.Config, tracer trace.Tracer) map[string]ToolHandler {
	return map[string]ToolHandler{
		PresentValueTool: PresentValueHandler(cfg, tracer),
		ScheduleTool:     DepreciationScheduleHandler(cfg, tracer),
		LeaseSummaryTool: LeaseSummaryHandler(cfg, tracer),
	}
}

// Names возвращает отсортированные имена инструментов
func Names(registry map[string]ToolHandler) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func started(toolName string) {
	metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()
}

func succeeded(span trace.Span, toolName string) {
	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	metrics.APICalls.WithLabelValues("tools", toolName, "success").Inc()
}

func validationFailed(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "validation_error"))
	metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
	metrics.APICalls.WithLabelValues("tools", toolName, "error").Inc()
	return fmt.Errorf("неверные параметры: %w", err)
}

func calculationFailed(span trace.Span, toolName string, err error) error {
	errorType := "calculation"
	if errors.Is(err, calculations.ErrDivisionByZero) {
		errorType = "division_by_zero"
	}
	span.SetAttributes(attribute.String("error", "calculation_error"))
	metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, errorType).Inc()
	metrics.APICalls.WithLabelValues("tools", toolName, "error").Inc()
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}

// PresentValueHandler обрабатывает запрос на расчет приведенной стоимости платежей
func PresentValueHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := PresentValueTool

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		started(toolName)

		paymentAmount, err := requiredFloatParam(params, "payment_amount")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		rate, err := floatParam(params, "discount_rate_annual", cfg.Defaults.DiscountRateAnnual)
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		paymentsPerYear, err := frequencyParam(params, cfg.Defaults.PaymentsPerYear)
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		termYears, err := requiredFloatParam(params, "term_years")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("payment_amount", paymentAmount),
			attribute.Float64("discount_rate_annual", rate),
			attribute.Int("payments_per_year", paymentsPerYear),
			attribute.Float64("term_years", termYears),
		)

		if err := validators.CheckPaymentAmount(cfg, paymentAmount); err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if err := validators.CheckDiscountRate(cfg, rate); err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if err := validators.CheckPaymentsPerYear(paymentsPerYear); err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if err := validators.CheckTermYears(cfg, termYears); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		pv, err := calculations.PresentValue(paymentAmount, rate, paymentsPerYear, termYears)
		if err != nil {
			return nil, calculationFailed(span, toolName, err)
		}

		span.SetAttributes(attribute.Float64("present_value", pv))
		succeeded(span, toolName)

		return &PresentValueResult{
			PresentValue: pv,
			Periods:      calculations.Periods(paymentsPerYear, termYears),
			PeriodRate:   rate / float64(paymentsPerYear),
		}, nil
	}
}

// DepreciationScheduleHandler обрабатывает запрос на построение графика амортизации
func DepreciationScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ScheduleTool

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		started(toolName)

		initialValue, err := requiredFloatParam(params, "initial_value")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		residualValue, err := floatParam(params, "residual_value", 0)
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if _, ok := params["term_months"]; !ok {
			return nil, validationFailed(span, toolName, invalidParam("term_months"))
		}
		termMonths, err := intParam(params, "term_months", 0)
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		startDate, err := dateParam(params, "start_date", calculations.Day(time.Now()))
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("initial_value", initialValue),
			attribute.Float64("residual_value", residualValue),
			attribute.Int("term_months", termMonths),
			attribute.String("start_date", startDate.Format(calculations.DateLayout)),
		)

		if err := validators.CheckInitialValue(cfg, initialValue); err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if err := validators.CheckResidualValue(cfg, residualValue); err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if err := validators.CheckTermMonths(cfg, termMonths); err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if err := validators.CheckResidualAgainstCarrying(residualValue, initialValue); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		monthly, err := calculations.MonthlyDepreciation(initialValue, residualValue, termMonths)
		if err != nil {
			return nil, calculationFailed(span, toolName, err)
		}
		schedule, err := calculations.DepreciationSchedule(initialValue, residualValue, termMonths, startDate)
		if err != nil {
			return nil, calculationFailed(span, toolName, err)
		}

		metrics.ScheduleMonths.Observe(float64(len(schedule)))
		succeeded(span, toolName)

		return &ScheduleResult{
			MonthlyDepreciation: monthly,
			Schedule:            schedule,
		}, nil
	}
}

// LeaseSummaryHandler обрабатывает запрос на полный расчет актива в форме права пользования
func LeaseSummaryHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := LeaseSummaryTool

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		started(toolName)

		in, err := LeaseInputsFromParams(cfg, params, time.Now())
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		return calculateLease(cfg, span, in)
	}
}

// CalculateLease проверяет параметры аренды, считает стоимость актива и график амортизации
func CalculateLease(ctx context.Context, cfg *config.Config, tracer trace.Tracer, in calculations.LeaseInputs) (*calculations.LeaseResult, error) {
	_, span := tracer.Start(ctx, LeaseSummaryTool)
	defer span.End()

	started(LeaseSummaryTool)

	return calculateLease(cfg, span, in)
}

func calculateLease(cfg *config.Config, span trace.Span, in calculations.LeaseInputs) (*calculations.LeaseResult, error) {
	toolName := LeaseSummaryTool

	span.SetAttributes(
		attribute.Float64("payment_amount", in.PaymentAmount),
		attribute.Float64("discount_rate_annual", in.DiscountRateAnnual),
		attribute.Int("payments_per_year", in.PaymentsPerYear),
		attribute.Float64("term_years", in.TermYears),
		attribute.Float64("residual_value", in.ResidualValue),
		attribute.Float64("initial_direct_costs", in.InitialDirectCosts),
		attribute.String("start_date", in.StartDate.Format(calculations.DateLayout)),
	)

	if err := validators.ValidateLeaseInputs(cfg, in); err != nil {
		return nil, validationFailed(span, toolName, err)
	}

	result, err := calculations.ComputeSummary(in)
	if err != nil {
		return nil, calculationFailed(span, toolName, err)
	}

	// Проверка возможна только после расчета стоимости актива
	if err := validators.CheckResidualAgainstCarrying(in.ResidualValue, result.CarryingValue.TotalInitialValue); err != nil {
		return nil, validationFailed(span, toolName, err)
	}

	metrics.ScheduleMonths.Observe(float64(len(result.Schedule)))
	span.SetAttributes(
		attribute.Float64("total_initial_value", result.CarryingValue.TotalInitialValue),
		attribute.Float64("monthly_depreciation", result.Summary.MonthlyDepreciation),
		attribute.Int("term_months", result.Summary.TermMonths),
	)
	succeeded(span, toolName)

	return result, nil
}
