package games

import (
	"math"

	"charlies_odds_backend/internal/model"
)

// Сегменты колеса по порядку, все с одинаковым весом
var wheelSegments = []float64{
	1.5, 2, 1.2, 5, 1.1, 3, 1.5, 10, 1.2, 2, 1.1, 1.5,
}

// Wheel - один оборот колеса с фиксированным списком сегментов
type Wheel struct{}

func (g *Wheel) Name() string {
	return model.GameWheel
}

func (g *Wheel) Play(src Source, p model.BetParams) (Outcome, error) {
	segment := int(math.Floor(src.Float64() * float64(len(wheelSegments))))
	if segment >= len(wheelSegments) {
		segment = len(wheelSegments) - 1
	}

	mult := wheelSegments[segment]

	return Outcome{
		Multiplier: mult,
		Payload: map[string]any{
			"segment":    segment,
			"multiplier": mult,
		},
	}, nil
}
