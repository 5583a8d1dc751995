package config

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/clforge/clforge/pkg/environment"
	"github.com/clforge/clforge/pkg/validator"
)

// Settings is the runtime configuration of the CLI and the HTTP service.
// Every field is read from CLFORGE_<name>.
type Settings struct {
	Env       environment.Environment `env:"ENV" envDefault:"development"`
	LogLevel  slog.Level              `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string                  `env:"LOG_FORMAT"`

	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// TrustProxy makes the service take client addresses from
	// X-Forwarded-For and X-Real-IP.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`

	// GenerateMaxCount caps n for a single generate call.
	GenerateMaxCount int `env:"GENERATE_MAX_COUNT" envDefault:"10000"`
	// GenerateMin and GenerateMax are the default correlative range.
	GenerateMin int64 `env:"GENERATE_MIN" envDefault:"1000000"`
	GenerateMax int64 `env:"GENERATE_MAX" envDefault:"99999999"`
	// GenerateBudget is how many RUTs one client may generate over the HTTP
	// API per GenerateBudgetInterval. Zero disables the budget.
	GenerateBudget         int           `env:"GENERATE_BUDGET" envDefault:"100000"`
	GenerateBudgetInterval time.Duration `env:"GENERATE_BUDGET_INTERVAL" envDefault:"1m"`
}

// Validate checks the values that env tags cannot express.
func (s Settings) Validate() error {
	rules := []validator.Rule{
		validator.OneOf("log_format", s.LogFormat, "", "json", "text"),
		validator.RequiredString("http_addr", s.HTTPAddr),
		validator.MinNum("http_read_timeout", s.HTTPReadTimeout, 0),
		validator.MinNum("http_write_timeout", s.HTTPWriteTimeout, 0),
		validator.MinNum("shutdown_timeout", s.ShutdownTimeout, time.Second),
		validator.MinNum("generate_max_count", s.GenerateMaxCount, 1),
		validator.MinNum("generate_min", s.GenerateMin, 0),
		validator.MaxNum[int64]("generate_max", s.GenerateMax, math.MaxUint32),
		validator.LessOrEqual("generate_min", s.GenerateMin, "generate_max", s.GenerateMax),
		validator.MinNum("generate_budget", s.GenerateBudget, 0),
	}
	// A budget below the per-call cap would refuse the largest calls forever.
	rules = append(rules, validator.When(s.GenerateBudget > 0,
		validator.LessOrEqual("generate_max_count", s.GenerateMaxCount, "generate_budget", s.GenerateBudget),
		validator.MinNum("generate_budget_interval", s.GenerateBudgetInterval, time.Second),
	)...)

	err := validator.Apply(rules...)
	if err != nil {
		return errors.Join(ErrInvalidSettings, err)
	}
	return nil
}

// LoadSettings loads and validates Settings.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
