package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Суммы везде хранятся в центах (int64), множители выплат — float64.

// UserStats - накопительная статистика аккаунта за всё время жизни
type UserStats struct {
	TotalBets    int
	TotalWins    int
	TotalLosses  int
	TotalWagered int64
	TotalWon     int64
	BiggestWin   int64
	BiggestLoss  int64
}

type User struct {
	ID           int
	Username     string
	Email        string
	Password     string
	Balance      int64
	IsAdmin      bool
	Currency     string
	Level        int
	Experience   int64
	LastBonusDay *time.Time
	CreatedAt    time.Time
	Stats        UserStats
}

// LevelRequirement - сколько опыта нужно набрать на уровне level для перехода дальше
func LevelRequirement(level int) int64 {
	return int64(100 * level)
}

// ApplyBet - записывает итог рассчитанной ставки в аккаунт: баланс,
// статистику и опыт. Пуш (payout == stake) не считается ни выигрышем,
// ни проигрышем.
func (u *User) ApplyBet(stake, payout int64) {
	u.Balance += payout - stake

	u.Stats.TotalBets++
	u.Stats.TotalWagered += stake
	u.Stats.TotalWon += payout
	if payout > stake {
		u.Stats.TotalWins++
	}
	if payout < stake {
		u.Stats.TotalLosses++
	}

	profit := payout - stake
	if profit > u.Stats.BiggestWin {
		u.Stats.BiggestWin = profit
	}
	if profit < u.Stats.BiggestLoss {
		u.Stats.BiggestLoss = profit
	}

	// Опыт: 1 XP за каждые 10 условных единиц ставки.
	// Остаток опыта переносится на следующий уровень.
	u.Experience += stake / 1000
	for u.Experience >= LevelRequirement(u.Level) {
		u.Experience -= LevelRequirement(u.Level)
		u.Level++
	}
}

type UserClaims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

// Currencies - поддерживаемые валюты отображения баланса
var Currencies = map[string]bool{
	"USD": true,
	"GBP": true,
	"EUR": true,
	"BTC": true,
	"ETH": true,
	"LTC": true,
}
