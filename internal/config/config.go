package config

import (
	"fmt"
	"strings"
	"time"

	"crane_fmv/internal/domain/entities"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTP       HTTP
	Log        Log
	Storage    Storage
	Payments   Payments
	Artifacts  Artifacts
	Pricing    Pricing
	Lifecycle  Lifecycle
	AdminToken string `env:"ADMIN_TOKEN" json:"-"`
}

type HTTP struct {
	Port    int    `env:"HTTP_PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Payments struct {
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN" json:"-"`
	Mock                   bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

type Pricing struct {
	SpotCheck    decimal.Decimal `env:"PRICE_SPOT_CHECK" envDefault:"250"`
	Professional decimal.Decimal `env:"PRICE_PROFESSIONAL" envDefault:"995"`
	Fleet        decimal.Decimal `env:"PRICE_FLEET" envDefault:"1495"`
}

// Prices returns the initial pricing table keyed by report type.
func (p Pricing) Prices() map[entities.ReportType]decimal.Decimal {
	return map[entities.ReportType]decimal.Decimal{
		entities.ReportTypeSpotCheck:    p.SpotCheck,
		entities.ReportTypeProfessional: p.Professional,
		entities.ReportTypeFleet:        p.Fleet,
	}
}

type Lifecycle struct {
	ExternalCallTimeout  time.Duration `env:"EXTERNAL_CALL_TIMEOUT" envDefault:"15s"`
	FleetMaxAssets       int           `env:"FLEET_MAX_ASSETS" envDefault:"250"`
	ValuationConcurrency int           `env:"VALUATION_CONCURRENCY" envDefault:"8"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER: unsupported value %q", c.Storage.Driver)
	}

	c.Artifacts.Store = strings.ToLower(strings.TrimSpace(c.Artifacts.Store))
	switch c.Artifacts.Store {
	case ArtifactStoreMinio, ArtifactStoreMemory:
	default:
		return fmt.Errorf("ARTIFACT_STORE: unsupported value %q", c.Artifacts.Store)
	}

	for rt, p := range c.Pricing.Prices() {
		if !p.IsPositive() {
			return fmt.Errorf("price for %s must be positive, got %s", rt, p)
		}
	}
	if c.Lifecycle.FleetMaxAssets < 1 {
		return fmt.Errorf("FLEET_MAX_ASSETS must be at least 1, got %d", c.Lifecycle.FleetMaxAssets)
	}
	if c.Lifecycle.ValuationConcurrency < 1 {
		return fmt.Errorf("VALUATION_CONCURRENCY must be at least 1, got %d", c.Lifecycle.ValuationConcurrency)
	}
	if c.Lifecycle.ExternalCallTimeout <= 0 {
		return fmt.Errorf("EXTERNAL_CALL_TIMEOUT must be positive, got %s", c.Lifecycle.ExternalCallTimeout)
	}
	return nil
}
