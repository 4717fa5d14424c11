package app

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Policy is the default aggregation policy, "failfast" or "accumulate".
	// The --all-errors flag overrides it per invocation.
	Policy string `env:"WAGECALC_POLICY" envDefault:"failfast"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"WAGECALC_LOG_LEVEL" envDefault:"info"`
	// LogFormat is "text" or "json".
	LogFormat string `env:"WAGECALC_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is applied first when present; a missing file is not
// an error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
