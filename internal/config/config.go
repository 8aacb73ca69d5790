package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port               int
	MaxPaymentAmount   float64
	MaxTermYears       float64
	MaxDiscountRate    float64
	Defaults           FormDefaults
	PresetsFile        string
	CORSAllowedOrigins []string
	APIEnv             string
	OTELEndpoint       string
	OTELServiceName    string
	LogLevel           string
}

// FormDefaults значения формы расчета по умолчанию
type FormDefaults struct {
	PaymentsPerYear    int
	PaymentAmount      float64
	TermYears          float64
	DiscountRateAnnual float64
	ResidualValue      float64
	InitialDirectCosts float64
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvInt("PORT", 8000),
		MaxPaymentAmount: getEnvFloat("MAX_PAYMENT_AMOUNT", 1e10),
		MaxTermYears:     getEnvFloat("MAX_TERM_YEARS", 100),
		MaxDiscountRate:  getEnvFloat("MAX_DISCOUNT_RATE", 1.0),
		Defaults: FormDefaults{
			PaymentsPerYear:    getEnvInt("DEFAULT_PAYMENTS_PER_YEAR", int(calculations.Annual)),
			PaymentAmount:      getEnvFloat("DEFAULT_PAYMENT_AMOUNT", 100000),
			TermYears:          getEnvFloat("DEFAULT_TERM_YEARS", 5),
			DiscountRateAnnual: getEnvFloat("DEFAULT_DISCOUNT_RATE", 0.05),
			ResidualValue:      getEnvFloat("DEFAULT_RESIDUAL_VALUE", 0),
			InitialDirectCosts: getEnvFloat("DEFAULT_INITIAL_DIRECT_COSTS", 0),
		},
		PresetsFile:        getEnvString("LEASE_PRESETS_FILE", ""),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		APIEnv:             getEnvString("API_ENV", "development"),
		OTELEndpoint:       getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:    getEnvString("OTEL_SERVICE_NAME", "rou-lease-server"),
		LogLevel:           getEnvString("LOG_LEVEL", "INFO"),
	}

	return cfg, nil
}

// Inputs собирает параметры аренды из значений по умолчанию, дата начала - сегодня
func (d FormDefaults) Inputs(now time.Time) calculations.LeaseInputs {
	return calculations.LeaseInputs{
		PaymentAmount:      d.PaymentAmount,
		DiscountRateAnnual: d.DiscountRateAnnual,
		PaymentsPerYear:    d.PaymentsPerYear,
		TermYears:          d.TermYears,
		ResidualValue:      d.ResidualValue,
		InitialDirectCosts: d.InitialDirectCosts,
		StartDate:          calculations.Day(now),
	}
}

// Debug сообщает, включено ли подробное логирование
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "DEBUG")
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
