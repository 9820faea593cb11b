package games

import (
	"math"

	"charlies_odds_backend/internal/model"
)

const (
	plinkoSteps = 16
	// Начальная позиция шарика по горизонтали (середина поля 0..100)
	plinkoStart = 50.0
)

// Таблица множителей по 17 лункам, симметричная: края платят максимум
var plinkoMultipliers = []float64{
	1000, 130, 26, 9, 4, 2, 1.5, 1, 0.5, 1, 1.5, 2, 4, 9, 26, 130, 1000,
}

// Plinko - падение шарика: 16 случайных отскоков влево/вправо,
// итоговая лунка выбирает множитель из таблицы.
type Plinko struct{}

func (g *Plinko) Name() string {
	return model.GamePlinko
}

func (g *Plinko) Play(src Source, p model.BetParams) (Outcome, error) {
	x := plinkoStart
	for i := 0; i < plinkoSteps; i++ {
		u := src.Float64()
		dir := -1.0
		if u > 0.5 {
			dir = 1.0
		}
		// Отскок со случайной амплитудой от 2 до 10
		bounce := u*8 + 2
		x += dir * bounce
		// Не даём шарику уйти за стенки
		x = clamp(x, 5, 95)
	}

	slotWidth := 100.0 / float64(len(plinkoMultipliers))
	slot := int(math.Floor(x / slotWidth))
	if slot < 0 {
		slot = 0
	}
	if slot >= len(plinkoMultipliers) {
		slot = len(plinkoMultipliers) - 1
	}

	mult := plinkoMultipliers[slot]

	// Выплата идёт всегда: лунки ниже 1x означают частичный возврат ставки
	return Outcome{
		Multiplier: mult,
		Payload: map[string]any{
			"slot":       slot,
			"position":   x,
			"multiplier": mult,
		},
	}, nil
}
