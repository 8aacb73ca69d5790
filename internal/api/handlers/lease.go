package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cloud-ru/rou-lease-go/internal/api/models"
	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"github.com/cloud-ru/rou-lease-go/internal/config"
	"github.com/cloud-ru/rou-lease-go/internal/report"
	"github.com/cloud-ru/rou-lease-go/internal/tools"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// LeaseHandler обрабатывает запросы расчета аренды
type LeaseHandler struct {
	cfg     *config.Config
	tracer  trace.Tracer
	presets []config.Preset
	now     func() time.Time
}

// NewLeaseHandler создает обработчик расчета аренды
func NewLeaseHandler(cfg *config.Config, tracer trace.Tracer, presets []config.Preset) *LeaseHandler {
	return &LeaseHandler{
		cfg:     cfg,
		tracer:  tracer,
		presets: presets,
		now:     time.Now,
	}
}

// Defaults обрабатывает GET /api/v1/defaults
func (h *LeaseHandler) Defaults(c *gin.Context) {
	in := h.cfg.Defaults.Inputs(h.now())

	frequencies := make([]string, 0, 4)
	for _, f := range calculations.Frequencies() {
		frequencies = append(frequencies, f.String())
	}

	c.JSON(http.StatusOK, models.DefaultsResponse{
		PaymentAmount:      in.PaymentAmount,
		Frequency:          calculations.PaymentFrequency(in.PaymentsPerYear).String(),
		PaymentsPerYear:    in.PaymentsPerYear,
		DiscountRateAnnual: in.DiscountRateAnnual,
		TermYears:          in.TermYears,
		ResidualValue:      in.ResidualValue,
		InitialDirectCosts: in.InitialDirectCosts,
		StartDate:          in.StartDate.Format(calculations.DateLayout),
		Frequencies:        frequencies,
	})
}

// ListPresets обрабатывает GET /api/v1/presets
func (h *LeaseHandler) ListPresets(c *gin.Context) {
	presets := h.presets
	if presets == nil {
		presets = []config.Preset{}
	}
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

// Calculate обрабатывает POST /api/v1/lease/calculate
func (h *LeaseHandler) Calculate(c *gin.Context) {
	in, result, ok := h.calculate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.NewLeaseResponse(uuid.New().String(), in, result))
}

// ExportCSV обрабатывает POST /api/v1/lease/schedule.csv
func (h *LeaseHandler) ExportCSV(c *gin.Context) {
	_, result, ok := h.calculate(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.CSVFileName))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := report.WriteScheduleCSV(c.Writer, result.Schedule); err != nil {
		log.Printf("csv export failed: %v", err)
	}
}

// Report обрабатывает POST /api/v1/lease/report
func (h *LeaseHandler) Report(c *gin.Context) {
	_, result, ok := h.calculate(c)
	if !ok {
		return
	}
	page, err := report.HTML(result)
	if err != nil {
		abortWithCalculationError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (h *LeaseHandler) calculate(c *gin.Context) (calculations.LeaseInputs, *calculations.LeaseResult, bool) {
	var req models.LeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return calculations.LeaseInputs{}, nil, false
	}

	in, err := h.inputs(req)
	if err != nil {
		abortWithCalculationError(c, err)
		return calculations.LeaseInputs{}, nil, false
	}

	result, err := tools.CalculateLease(c.Request.Context(), h.cfg, h.tracer, in)
	if err != nil {
		abortWithCalculationError(c, err)
		return calculations.LeaseInputs{}, nil, false
	}
	return in, result, true
}

// inputs накладывает поля запроса на пресет или значения по умолчанию
func (h *LeaseHandler) inputs(req models.LeaseRequest) (calculations.LeaseInputs, error) {
	now := h.now()
	in := h.cfg.Defaults.Inputs(now)

	if req.Preset != "" {
		p, err := config.FindPreset(h.presets, req.Preset)
		if err != nil {
			return in, err
		}
		if in, err = p.Inputs(h.cfg.Defaults, now); err != nil {
			return in, fmt.Errorf("%v: %w", err, calculations.ErrInvalidInput)
		}
	}

	if req.PaymentAmount != nil {
		in.PaymentAmount = *req.PaymentAmount
	}
	if req.Frequency != "" {
		f, err := calculations.ParseFrequency(req.Frequency)
		if err != nil {
			return in, fmt.Errorf("frequency: %v: %w", err, calculations.ErrInvalidInput)
		}
		in.PaymentsPerYear = int(f)
	}
	if req.PaymentsPerYear != nil {
		in.PaymentsPerYear = *req.PaymentsPerYear
	}
	if req.DiscountRateAnnual != nil {
		in.DiscountRateAnnual = *req.DiscountRateAnnual
	}
	if req.TermYears != nil {
		in.TermYears = *req.TermYears
	}
	if req.ResidualValue != nil {
		in.ResidualValue = *req.ResidualValue
	}
	if req.InitialDirectCosts != nil {
		in.InitialDirectCosts = *req.InitialDirectCosts
	}
	if req.StartDate != "" {
		d, err := calculations.ParseDate(req.StartDate)
		if err != nil {
			return in, fmt.Errorf("start_date: %v: %w", err, calculations.ErrInvalidInput)
		}
		in.StartDate = d
	}
	return in, nil
}
