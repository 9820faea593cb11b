package model

// Стратегии авто-ставок
const (
	StrategyFixed      = "fixed"
	StrategyMartingale = "martingale"
	StrategyFibonacci  = "fibonacci"
	StrategyLabouchere = "labouchere"
)

// Политики изменения ставки для стратегии fixed
const (
	PolicyReset    = "reset"
	PolicyIncrease = "increase"
	PolicyDecrease = "decrease"
)

// AutoBetConfig - пользовательские параметры серии авто-ставок.
// Заполняется до старта серии, во время серии не изменяется
// (кроме флага "остановиться на следующем выигрыше").
type AutoBetConfig struct {
	Game   string
	Stake  int64
	Params BetParams

	Strategy string

	// fixed
	OnWin      string
	OnLoss     string
	IncreaseBy int64 // проценты
	DecreaseBy int64 // проценты

	// martingale
	LossMultiplier float64

	// labouchere: исходная последовательность множителей базовой ставки
	Sequence []int64

	// Стоп-условия
	StopOnProfit     bool
	StopProfitAmount int64
	StopOnLoss       bool
	StopLossAmount   int64

	// Бюджет ставок; Infinite = без ограничения
	MaxBets  int
	Infinite bool

	// Сокращённая пауза между ставками
	Instant bool
}

// AutoBetStatus - снимок состояния серии для клиента
type AutoBetStatus struct {
	Running       bool
	Game          string
	Strategy      string
	BaseBet       int64
	CurrentStake  int64
	RemainingBets int
	Infinite      bool
	StopNextWin   bool
	StopReason    string

	SessionProfit     int64
	TotalBets         int
	Wins              int
	Losses            int
	CurrentStreak     int
	WinStreak         bool
	LongestWinStreak  int
	LongestLossStreak int
	ProfitHistory     []ProfitPoint
}

// ProfitPoint - точка графика прибыли сессии
type ProfitPoint struct {
	Bet    int
	Profit int64
}
