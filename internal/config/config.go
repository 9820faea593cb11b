package config

import (
	"time"

	"charlies_odds_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// GamesConfig - стартовые настройки игр из config.yaml.
// Применяются только к играм, которых ещё нет в БД:
// правки админа при рестарте не затираются.
type GamesConfig interface {
	Defaults() []model.GameSettings
}

// TimingConfig - темп игровых циклов
type TimingConfig interface {
	CrashTick() time.Duration
	AutoBetDelay() time.Duration
	AutoBetInstantDelay() time.Duration
}
