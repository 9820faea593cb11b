package games

import (
	"math"

	"charlies_odds_backend/internal/model"
)

// Dice - бросок числа в [0, 100) с точностью до сотых.
// Игрок выбирает множитель выплаты, из него считается порог выигрыша.
type Dice struct{}

func (g *Dice) Name() string {
	return model.GameDice
}

// Play выполняет один бросок.
// Шанс выигрыша = 100/m с поправкой на преимущество казино,
// порог = шанс при roll under и 100-шанс при roll over.
func (g *Dice) Play(src Source, p model.BetParams) (Outcome, error) {
	mult := clamp(p.Multiplier, 1.01, 100)

	edge := p.HouseEdge
	if edge <= 0 {
		edge = 1
	}
	winChance := 100 / mult * (100 - edge) / 100

	target := winChance
	if !p.RollUnder {
		target = 100 - winChance
	}

	// 10000 дискретных исходов: 0.00 ... 99.99
	roll := math.Floor(src.Float64()*10000) / 100

	var won bool
	if p.RollUnder {
		won = roll < target
	} else {
		won = roll > target
	}

	payoutMult := 0.0
	if won {
		payoutMult = mult
	}

	return Outcome{
		Multiplier: payoutMult,
		Payload: map[string]any{
			"roll":       roll,
			"target":     target,
			"roll_under": p.RollUnder,
			"won":        won,
		},
	}, nil
}
