package crash

type StartRequest struct {
	Stake       int64   `json:"stake"` // В центах
	AutoCashout bool    `json:"auto_cashout"`
	CashoutAt   float64 `json:"cashout_at"`
}

type StateResponse struct {
	RoundID    string  `json:"round_id"`
	Status     string  `json:"status"`
	Multiplier float64 `json:"multiplier"`
	CrashPoint float64 `json:"crash_point,omitempty"` // Только после завершения раунда
	Stake      int64   `json:"stake"`
	Payout     int64   `json:"payout"`
	Balance    int64   `json:"balance"`
}
