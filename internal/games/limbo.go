package games

import "charlies_odds_backend/internal/model"

// Limbo - мгновенный розыгрыш множителя.
// Масса распределения сосредоточена у малых значений и
// геометрически редеет к потолку 1000x.
type Limbo struct{}

func (g *Limbo) Name() string {
	return model.GameLimbo
}

// limboMultiplier отображает u из [0, 1) в множитель раунда.
// Кусочная кривая: 50% массы в [1, 2), 30% в [2, 5), 15% в [5, 20), 5% в [20, 1000].
// На стыках полос формулы сходятся без скачков.
func limboMultiplier(u float64) float64 {
	var m float64
	switch {
	case u < 0.5:
		m = 1 + u*2
	case u < 0.8:
		m = 2 + (u-0.5)*10
	case u < 0.95:
		m = 5 + (u-0.8)*100
	default:
		m = 20 + (u-0.95)*19600
	}
	return clamp(m, 1.01, 1000)
}

// Play выполняет розыгрыш. Выигрыш - если множитель раунда
// не меньше целевого; выплата идёт по целевому множителю.
func (g *Limbo) Play(src Source, p model.BetParams) (Outcome, error) {
	target := clamp(p.Target, 1.01, 1000)
	result := limboMultiplier(src.Float64())

	payoutMult := 0.0
	if result >= target {
		payoutMult = target
	}

	return Outcome{
		Multiplier: payoutMult,
		Payload: map[string]any{
			"result": result,
			"target": target,
			"won":    payoutMult > 0,
		},
	}, nil
}
