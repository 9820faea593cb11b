package env

import (
	"fmt"
	"os"

	"charlies_odds_backend/internal/config"
	"charlies_odds_backend/internal/model"

	"gopkg.in/yaml.v3"
)

type gameSettingsYAML struct {
	Enabled   bool    `yaml:"enabled"`
	MinBet    int64   `yaml:"min_bet"`
	MaxBet    int64   `yaml:"max_bet"`
	HouseEdge float64 `yaml:"house_edge"`
}

type gamesFileYAML struct {
	Games map[string]gameSettingsYAML `yaml:"games"`
}

type gamesConfig struct {
	defaults []model.GameSettings
}

// NewGamesConfigFromYAML читает стартовые настройки игр из yaml файла
func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read games config: %w", err)
	}

	var file gamesFileYAML
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse games config: %w", err)
	}
	if len(file.Games) == 0 {
		return nil, fmt.Errorf("games config is empty")
	}

	defaults := make([]model.GameSettings, 0, len(file.Games))
	for game, s := range file.Games {
		if s.MinBet < 1 || s.MaxBet < s.MinBet {
			return nil, fmt.Errorf("invalid bet bounds for game %s", game)
		}
		defaults = append(defaults, model.GameSettings{
			Game:      game,
			Enabled:   s.Enabled,
			MinBet:    s.MinBet,
			MaxBet:    s.MaxBet,
			HouseEdge: s.HouseEdge,
		})
	}

	return &gamesConfig{defaults: defaults}, nil
}

func (cfg *gamesConfig) Defaults() []model.GameSettings {
	return cfg.defaults
}
