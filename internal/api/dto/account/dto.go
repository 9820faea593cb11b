package account

import "time"

type StatsDTO struct {
	TotalBets    int   `json:"total_bets"`
	TotalWins    int   `json:"total_wins"`
	TotalLosses  int   `json:"total_losses"`
	TotalWagered int64 `json:"total_wagered"`
	TotalWon     int64 `json:"total_won"`
	BiggestWin   int64 `json:"biggest_win"`
	BiggestLoss  int64 `json:"biggest_loss"`
}

type ProfileResponse struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Balance     int64     `json:"balance"` // В центах
	IsAdmin     bool      `json:"is_admin"`
	Currency    string    `json:"currency"`
	Level       int       `json:"level"`
	Experience  int64     `json:"experience"`
	NextLevelXP int64     `json:"next_level_xp"`
	CreatedAt   time.Time `json:"created_at"`
	Stats       StatsDTO  `json:"stats"`
}

type DailyBonusResponse struct {
	Bonus   int64 `json:"bonus"`
	Balance int64 `json:"balance"`
}

type CurrencyRequest struct {
	Currency string `json:"currency"`
}
