package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"gopkg.in/yaml.v3"
)

// Preset именованный набор параметров аренды из YAML файла.
// Числовые поля - указатели: явный 0 (беспроцентная аренда) отличается от пропущенного поля.
type Preset struct {
	Name               string   `yaml:"name" json:"name"`
	Description        string   `yaml:"description" json:"description,omitempty"`
	PaymentAmount      *float64 `yaml:"payment_amount" json:"payment_amount,omitempty"`
	Frequency          string   `yaml:"frequency" json:"frequency,omitempty"`
	DiscountRateAnnual *float64 `yaml:"discount_rate_annual" json:"discount_rate_annual,omitempty"`
	TermYears          *float64 `yaml:"term_years" json:"term_years,omitempty"`
	ResidualValue      *float64 `yaml:"residual_value" json:"residual_value,omitempty"`
	InitialDirectCosts *float64 `yaml:"initial_direct_costs" json:"initial_direct_costs,omitempty"`
	StartDate          string   `yaml:"start_date" json:"start_date,omitempty"`
}

type presetsFile struct {
	Presets []Preset `yaml:"presets"`
}

// ErrPresetNotFound возвращается FindPreset для неизвестного имени
var ErrPresetNotFound = errors.New("пресет не найден")

// LoadPresets читает пресеты из YAML. Пустой путь означает отсутствие пресетов.
func LoadPresets(path string) ([]Preset, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f presetsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	seen := make(map[string]bool, len(f.Presets))
	for i, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("%s: presets[%d].name is required", path, i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%s: duplicate preset %q", path, p.Name)
		}
		seen[p.Name] = true
	}
	return f.Presets, nil
}

// FindPreset ищет пресет по имени
func FindPreset(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%q: %w", name, ErrPresetNotFound)
}

// Inputs накладывает заданные поля пресета на значения по умолчанию
func (p Preset) Inputs(defaults FormDefaults, now time.Time) (calculations.LeaseInputs, error) {
	in := defaults.Inputs(now)
	if p.PaymentAmount != nil {
		in.PaymentAmount = *p.PaymentAmount
	}
	if p.Frequency != "" {
		f, err := calculations.ParseFrequency(p.Frequency)
		if err != nil {
			return calculations.LeaseInputs{}, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		in.PaymentsPerYear = int(f)
	}
	if p.DiscountRateAnnual != nil {
		in.DiscountRateAnnual = *p.DiscountRateAnnual
	}
	if p.TermYears != nil {
		in.TermYears = *p.TermYears
	}
	if p.ResidualValue != nil {
		in.ResidualValue = *p.ResidualValue
	}
	if p.InitialDirectCosts != nil {
		in.InitialDirectCosts = *p.InitialDirectCosts
	}
	if p.StartDate != "" {
		d, err := calculations.ParseDate(p.StartDate)
		if err != nil {
			return calculations.LeaseInputs{}, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		in.StartDate = d
	}
	return in, nil
}
