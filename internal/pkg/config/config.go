package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between deployments
// - default: library policy common across environments
// -----------------------------------------------------------------------------

type Config struct {
	Circulation CirculationConfig
	Log         LogConfig
}

// CirculationConfig carries the lending policy knobs.
type CirculationConfig struct {
	LoanPeriodDays  int     `envconfig:"CIRC_LOAN_PERIOD_DAYS" default:"14"`
	RenewPeriodDays int     `envconfig:"CIRC_RENEW_PERIOD_DAYS" default:"7"`
	FineRatePerDay  float64 `envconfig:"CIRC_FINE_RATE_PER_DAY" default:"0.5"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Circulation: CirculationConfig{
			LoanPeriodDays:  14,
			RenewPeriodDays: 7,
			FineRatePerDay:  0.5,
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
