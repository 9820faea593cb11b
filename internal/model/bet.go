package model

import "time"

// Идентификаторы игр. Совпадают с ключами в config.yaml и в таблице game_settings.
const (
	GameDice      = "dice"
	GameLimbo     = "limbo"
	GameCrash     = "crash"
	GameBlackjack = "blackjack"
	GamePlinko    = "plinko"
	GameWheel     = "spin-wheel"
)

// BetParams - игровые параметры одной ставки.
// Каждая игра читает только свои поля, остальные игнорирует.
type BetParams struct {
	// Dice: целевой множитель и направление броска
	Multiplier float64
	RollUnder  bool
	// Limbo и Crash (режим авто-кэшаута): целевой множитель
	Target float64
	// Преимущество казино в процентах. Не приходит от клиента,
	// заполняется сервисом из настроек игры.
	HouseEdge float64
}

// BetRequest - запрос на одну моментальную ставку
type BetRequest struct {
	Game   string
	Stake  int64
	Params BetParams
}

// BetRecord - запись о рассчитанной ставке. После создания не изменяется.
type BetRecord struct {
	ID         string
	UserID     int
	Game       string
	Stake      int64
	Payout     int64
	Multiplier float64
	Result     map[string]any
	CreatedAt  time.Time
}

// BetResult - итог расчёта ставки, возвращаемый клиенту
type BetResult struct {
	Record     BetRecord
	Balance    int64
	Level      int
	Experience int64
}

// GameSettings - настройки игры, управляются админом
type GameSettings struct {
	Game      string
	Enabled   bool
	MinBet    int64
	MaxBet    int64
	HouseEdge float64 // в процентах
}
