package bet

import "time"

type ParamsDTO struct {
	Multiplier float64 `json:"multiplier"` // Dice: целевой множитель
	RollUnder  bool    `json:"roll_under"` // Dice: бросок ниже порога
	Target     float64 `json:"target"`     // Limbo и Crash: целевой множитель
}

type PlaceBetRequest struct {
	Game   string    `json:"game"`
	Stake  int64     `json:"stake"` // В центах
	Params ParamsDTO `json:"params"`
}

type BetResponse struct {
	ID         string         `json:"id"`
	Game       string         `json:"game"`
	Stake      int64          `json:"stake"`
	Payout     int64          `json:"payout"`
	Multiplier float64        `json:"multiplier"`
	Result     map[string]any `json:"result"`
	CreatedAt  time.Time      `json:"created_at"`
}

type PlaceBetResponse struct {
	Bet        BetResponse `json:"bet"`
	Balance    int64       `json:"balance"`
	Level      int         `json:"level"`
	Experience int64       `json:"experience"`
}

type HistoryResponse struct {
	Bets []BetResponse `json:"bets"`
}
