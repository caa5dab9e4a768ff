package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	Pricing PricingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Pricing.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TERRAVIK_APP_ENV" default:"dev"`
	Port         string `envconfig:"TERRAVIK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TERRAVIK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TERRAVIK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type PricingConfig struct {
	// ShippingFeeCents is the flat per-delivery shipping fee charged on
	// one-time purchases and waived under subscription.
	ShippingFeeCents int64 `envconfig:"TERRAVIK_SHIPPING_FEE_CENTS" default:"1290"`

	// ScheduleHorizonMonths bounds the forward delivery calendar.
	ScheduleHorizonMonths int `envconfig:"TERRAVIK_SCHEDULE_HORIZON_MONTHS" default:"12"`
}

func (p PricingConfig) validate() error {
	if p.ShippingFeeCents < 0 {
		return fmt.Errorf("shipping fee must be non-negative, got %d", p.ShippingFeeCents)
	}
	if p.ScheduleHorizonMonths <= 0 {
		return fmt.Errorf("schedule horizon must be positive, got %d", p.ScheduleHorizonMonths)
	}
	return nil
}

// ShippingFee returns the configured fee as a decimal amount.
func (p PricingConfig) ShippingFee() decimal.Decimal {
	return decimal.NewFromInt(p.ShippingFeeCents).Shift(-2)
}
