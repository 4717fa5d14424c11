package app

import (
	"wagecalc/internal/logger"
	"wagecalc/internal/services/compose"
	"wagecalc/internal/services/earnings"
	"wagecalc/internal/services/validate"
)

// Build constructs the dependency graph from cfg: logger, field validators,
// composer and calculator.
func Build(cfg Config) (*App, error) {
	policy, err := compose.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	log := logger.New(nil, logger.Format(cfg.LogFormat), logger.ParseLevel(cfg.LogLevel))

	fields := validate.New()
	return New(compose.New(fields, policy), earnings.New(), log), nil
}
