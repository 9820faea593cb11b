package repository

import (
	"context"
	"errors"
	"time"

	"charlies_odds_backend/internal/model"
)

// ErrNotFound возвращается при отсутствии записи
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	// GetUserByLogin ищет по email либо имени пользователя, без учёта регистра
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	// GetUserForUpdate читает пользователя с блокировкой строки (FOR UPDATE).
	// Вызывается только внутри транзакции.
	GetUserForUpdate(ctx context.Context, id int) (*model.User, error)

	UpdateBalance(ctx context.Context, id int, balance int64) error
	ApplyBetOutcome(ctx context.Context, user *model.User) error
	UpdateCurrency(ctx context.Context, id int, currency string) error
	SetLastBonusDay(ctx context.Context, id int, day time.Time, balance int64) error

	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type BetRepository interface {
	CreateBet(ctx context.Context, bet *model.BetRecord) error

	// TrimHistory удаляет записи пользователя сверх keep последних
	TrimHistory(ctx context.Context, userID int, keep int) error

	ListBets(ctx context.Context, userID int, limit, offset int) ([]*model.BetRecord, error)
	ClearBets(ctx context.Context, userID int) error
}

type GameSettingsRepository interface {
	GetSettings(ctx context.Context, game string) (*model.GameSettings, error)
	ListSettings(ctx context.Context) ([]*model.GameSettings, error)
	UpsertSettings(ctx context.Context, settings *model.GameSettings) error
}

type SuggestionRepository interface {
	CreateSuggestion(ctx context.Context, s *model.Suggestion) error
	ListSuggestions(ctx context.Context) ([]*model.Suggestion, error)
	GetSuggestion(ctx context.Context, id string) (*model.Suggestion, error)

	// Vote записывает голос пользователя. Повторный голос перезаписывает
	// предыдущий; возвращает ErrAlreadyVoted, если направление не изменилось.
	Vote(ctx context.Context, suggestionID string, userID int, up bool) error

	UpdateStatus(ctx context.Context, id string, status string) error
}

// ErrAlreadyVoted - пользователь уже голосовал в этом направлении
var ErrAlreadyVoted = errors.New("already voted")
