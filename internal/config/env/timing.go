package env

import (
	"fmt"
	"os"
	"time"

	"charlies_odds_backend/internal/config"
)

const (
	crashTickEnvName           = "CRASH_TICK"
	autoBetDelayEnvName        = "AUTOBET_DELAY"
	autoBetInstantDelayEnvName = "AUTOBET_INSTANT_DELAY"
)

type timingConfig struct {
	crashTick           time.Duration
	autoBetDelay        time.Duration
	autoBetInstantDelay time.Duration
}

// NewTimingConfig читает темп игровых циклов из окружения.
// Все переменные необязательны, по умолчанию нули: сервисы сами
// подставят свои стандартные значения.
func NewTimingConfig() (config.TimingConfig, error) {
	cfg := &timingConfig{}

	for _, v := range []struct {
		name string
		dst  *time.Duration
	}{
		{crashTickEnvName, &cfg.crashTick},
		{autoBetDelayEnvName, &cfg.autoBetDelay},
		{autoBetInstantDelayEnvName, &cfg.autoBetInstantDelay},
	} {
		raw := os.Getenv(v.name)
		if len(raw) == 0 {
			continue
		}
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", v.name, err)
		}
		*v.dst = parsed
	}

	return cfg, nil
}

func (cfg *timingConfig) CrashTick() time.Duration {
	return cfg.crashTick
}

func (cfg *timingConfig) AutoBetDelay() time.Duration {
	return cfg.autoBetDelay
}

func (cfg *timingConfig) AutoBetInstantDelay() time.Duration {
	return cfg.autoBetInstantDelay
}
