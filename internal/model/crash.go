package model

// Состояния раунда crash
const (
	CrashActive    = "active"
	CrashCashedOut = "cashed_out"
	CrashCrashed   = "crashed"
)

// CrashStart - запрос на запуск раунда crash
type CrashStart struct {
	Stake       int64
	AutoCashout bool
	CashoutAt   float64
}

// CrashState - снимок раунда для клиента.
// CrashPoint раскрывается только после завершения раунда.
type CrashState struct {
	RoundID    string
	Status     string
	Multiplier float64
	CrashPoint float64
	Stake      int64
	Payout     int64
	Balance    int64
}
