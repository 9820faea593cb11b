package admin

import (
	"context"
	"errors"

	"charlies_odds_backend/internal/games"
	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrNegativeBalance = errors.New("negative balance")
	ErrUnknownGame     = errors.New("unknown game")
	ErrInvalidSettings = errors.New("invalid game settings")
	ErrUnknownStatus   = errors.New("unknown suggestion status")
)

type serv struct {
	userRepo       repository.UserRepository
	settingsRepo   repository.GameSettingsRepository
	suggestionRepo repository.SuggestionRepository
	log            *logrus.Logger
}

func NewService(
	userRepo repository.UserRepository,
	settingsRepo repository.GameSettingsRepository,
	suggestionRepo repository.SuggestionRepository,
	log *logrus.Logger,
) *serv {
	return &serv{
		userRepo:       userRepo,
		settingsRepo:   settingsRepo,
		suggestionRepo: suggestionRepo,
		log:            log,
	}
}

func (s *serv) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// SetBalance - прямая установка баланса админом
func (s *serv) SetBalance(ctx context.Context, userID int, balance int64) error {
	if balance < 0 {
		return ErrNegativeBalance
	}

	if err := s.userRepo.UpdateBalance(ctx, userID, balance); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"balance": balance,
	}).Info("balance set by admin")

	return nil
}

func (s *serv) DeleteUser(ctx context.Context, userID int) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

func (s *serv) ListGameSettings(ctx context.Context) ([]*model.GameSettings, error) {
	return s.settingsRepo.ListSettings(ctx)
}

// UpdateGameSettings - меняет настройки игры: доступность, границы
// ставок, преимущество казино
func (s *serv) UpdateGameSettings(ctx context.Context, settings *model.GameSettings) error {
	if _, err := games.ByName(settings.Game); err != nil {
		return ErrUnknownGame
	}
	if settings.MinBet < 1 || settings.MaxBet < settings.MinBet {
		return ErrInvalidSettings
	}
	if settings.HouseEdge < 0 || settings.HouseEdge > 100 {
		return ErrInvalidSettings
	}

	return s.settingsRepo.UpsertSettings(ctx, settings)
}

// SetSuggestionStatus - перевод предложения в новый статус
func (s *serv) SetSuggestionStatus(ctx context.Context, suggestionID, status string) error {
	if !model.SuggestionStatuses[status] {
		return ErrUnknownStatus
	}

	return s.suggestionRepo.UpdateStatus(ctx, suggestionID, status)
}
