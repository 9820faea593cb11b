package app

import (
	"context"
	"errors"
	"net/http"

	"charlies_odds_backend/internal/config"
	"charlies_odds_backend/internal/database"
	"charlies_odds_backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type App struct {
	ServiceProvider *ServiceProvider
	log             *logrus.Logger
}

func NewApp() *App {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &App{log: log}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.log)
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		s.log.WithError(err).Warn("no .env file, using environment")
	}
	s.initServiceProvider()

	ctx := context.Background()

	// Миграции до первого запроса
	if err = database.MigrateUp(s.ServiceProvider.PgConfig().DSN()); err != nil {
		return err
	}

	// Стартовые настройки игр из config.yaml
	if err = s.seedGameSettings(ctx); err != nil {
		return err
	}

	r := s.ServiceProvider.Router(ctx)

	s.log.Infof("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}

// seedGameSettings создаёт настройки игр, которых ещё нет в БД.
// Существующие не трогает: правки админа переживают рестарт
func (s *App) seedGameSettings(ctx context.Context) error {
	repo := s.ServiceProvider.GameSettingsRepo(ctx)

	for _, def := range s.ServiceProvider.GamesCfg().Defaults() {
		_, err := repo.GetSettings(ctx, def.Game)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		def := def
		if err = repo.UpsertSettings(ctx, &def); err != nil {
			return err
		}
		s.log.WithField("game", def.Game).Info("seeded game settings")
	}

	return nil
}
