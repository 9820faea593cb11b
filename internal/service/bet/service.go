package bet

import (
	"errors"

	"charlies_odds_backend/internal/games"
	"charlies_odds_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

// Максимум записей истории на пользователя
const historyKeep = 1000

var (
	ErrUnknownGame         = errors.New("unknown game")
	ErrGameDisabled        = errors.New("game is disabled")
	ErrBetOutOfRange       = errors.New("bet amount out of range")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type serv struct {
	txManager    trm.Manager
	userRepo     repository.UserRepository
	betRepo      repository.BetRepository
	settingsRepo repository.GameSettingsRepository
	src          games.Source
	log          *logrus.Logger
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	betRepo repository.BetRepository,
	settingsRepo repository.GameSettingsRepository,
	src games.Source,
	log *logrus.Logger,
) *serv {
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		betRepo:      betRepo,
		settingsRepo: settingsRepo,
		src:          src,
		log:          log,
	}
}
