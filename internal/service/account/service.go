package account

import (
	"errors"

	"charlies_odds_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

var (
	ErrBonusAlreadyClaimed = errors.New("daily bonus already claimed")
	ErrUnknownCurrency     = errors.New("unknown currency")
)

// Ежедневный бонус по достигнутому уровню.
// Берётся наибольший порог, не превышающий уровень пользователя.
var bonusTiers = []struct {
	Level int
	Bonus int64
}{
	{1, 2_500},
	{5, 4_500},
	{10, 7_000},
	{15, 9_500},
	{25, 14_500},
	{50, 27_000},
}

// BonusForLevel - размер ежедневного бонуса для уровня
func BonusForLevel(level int) int64 {
	bonus := bonusTiers[0].Bonus
	for _, tier := range bonusTiers {
		if level >= tier.Level {
			bonus = tier.Bonus
		}
	}
	return bonus
}

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
}

func NewService(txManager trm.Manager, userRepo repository.UserRepository) *serv {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
	}
}
