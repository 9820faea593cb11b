package autobet

import betdto "charlies_odds_backend/internal/api/dto/bet"

type StartRequest struct {
	Game   string           `json:"game"`
	Stake  int64            `json:"stake"` // В центах
	Params betdto.ParamsDTO `json:"params"`

	Strategy string `json:"strategy"`

	// fixed
	OnWin      string `json:"on_win"`
	OnLoss     string `json:"on_loss"`
	IncreaseBy int64  `json:"increase_by"` // Проценты
	DecreaseBy int64  `json:"decrease_by"` // Проценты

	// martingale
	LossMultiplier float64 `json:"loss_multiplier"`

	// labouchere
	Sequence []int64 `json:"sequence"`

	StopOnProfit     bool  `json:"stop_on_profit"`
	StopProfitAmount int64 `json:"stop_profit_amount"`
	StopOnLoss       bool  `json:"stop_on_loss"`
	StopLossAmount   int64 `json:"stop_loss_amount"`

	MaxBets  int  `json:"max_bets"`
	Infinite bool `json:"infinite"`
	Instant  bool `json:"instant"`
}

type ProfitPointDTO struct {
	Bet    int   `json:"bet"`
	Profit int64 `json:"profit"`
}

type StatusResponse struct {
	Running       bool   `json:"running"`
	Game          string `json:"game"`
	Strategy      string `json:"strategy"`
	BaseBet       int64  `json:"base_bet"`
	CurrentStake  int64  `json:"current_stake"`
	RemainingBets int    `json:"remaining_bets"` // -1 при бесконечной серии
	Infinite      bool   `json:"infinite"`
	StopNextWin   bool   `json:"stop_next_win"`
	StopReason    string `json:"stop_reason,omitempty"`

	SessionProfit     int64            `json:"session_profit"`
	TotalBets         int              `json:"total_bets"`
	Wins              int              `json:"wins"`
	Losses            int              `json:"losses"`
	CurrentStreak     int              `json:"current_streak"`
	WinStreak         bool             `json:"win_streak"`
	LongestWinStreak  int              `json:"longest_win_streak"`
	LongestLossStreak int              `json:"longest_loss_streak"`
	ProfitHistory     []ProfitPointDTO `json:"profit_history"`
}
