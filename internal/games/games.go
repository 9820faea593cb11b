package games

import (
	"fmt"

	"charlies_odds_backend/internal/model"
)

// Outcome - результат одного розыгрыша.
// Multiplier - фактический множитель выплаты (0 при проигрыше в dice/limbo/crash),
// Payload - данные раунда для записи в историю ставок.
type Outcome struct {
	Multiplier float64
	Payload    map[string]any
}

// Game - генератор исходов одной игры.
// Реализация обязана быть чистой: всё случайное берётся только из src.
type Game interface {
	Name() string
	Play(src Source, p model.BetParams) (Outcome, error)
}

var registry = map[string]Game{
	model.GameDice:      &Dice{},
	model.GameLimbo:     &Limbo{},
	model.GameCrash:     &Crash{},
	model.GameBlackjack: &Blackjack{},
	model.GamePlinko:    &Plinko{},
	model.GameWheel:     &Wheel{},
}

// ByName возвращает игру по идентификатору
func ByName(name string) (Game, error) {
	g, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown game: %s", name)
	}
	return g, nil
}

// clamp ограничивает v диапазоном [lo, hi].
// Параметры вне диапазона не отклоняются, а приводятся к границе.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
