package service

import (
	"context"

	"charlies_odds_backend/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	// Login принимает email либо имя пользователя, без учёта регистра
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type BetService interface {
	// Place рассчитывает одну моментальную ставку: списание, розыгрыш,
	// выплата и запись в историю в одной транзакции
	Place(ctx context.Context, userID int, req model.BetRequest) (*model.BetResult, error)
}

type CrashService interface {
	Start(ctx context.Context, userID int, req model.CrashStart) (*model.CrashState, error)
	Cashout(ctx context.Context, userID int) (*model.CrashState, error)
	State(ctx context.Context, userID int) (*model.CrashState, error)
}

type AutoBetService interface {
	Start(ctx context.Context, userID int, cfg model.AutoBetConfig) error
	Stop(ctx context.Context, userID int) error
	StopOnNextWin(ctx context.Context, userID int) error
	Status(ctx context.Context, userID int) (*model.AutoBetStatus, error)
}

type AccountService interface {
	Profile(ctx context.Context, userID int) (*model.User, error)
	ClaimDailyBonus(ctx context.Context, userID int) (bonus int64, balance int64, err error)
	SetCurrency(ctx context.Context, userID int, currency string) error
}

type HistoryService interface {
	List(ctx context.Context, userID int, limit, offset int) ([]*model.BetRecord, error)
	Clear(ctx context.Context, userID int) error
}

type SuggestionService interface {
	Create(ctx context.Context, userID int, author, title, description, category string) (*model.Suggestion, error)
	List(ctx context.Context) ([]*model.Suggestion, error)
	Vote(ctx context.Context, suggestionID string, userID int, up bool) error
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	SetBalance(ctx context.Context, userID int, balance int64) error
	DeleteUser(ctx context.Context, userID int) error

	ListGameSettings(ctx context.Context) ([]*model.GameSettings, error)
	UpdateGameSettings(ctx context.Context, settings *model.GameSettings) error

	SetSuggestionStatus(ctx context.Context, suggestionID, status string) error
}
