package games

import (
	"math"

	"charlies_odds_backend/internal/model"
)

// Crash в мгновенном режиме (для серий авто-ставок): игрок задаёт
// целевой множитель авто-кэшаута, раунд разыгрывается без анимации.
// Интерактивные раунды с живым кэшаутом обслуживает сервис crash,
// он использует только CrashPoint.
type Crash struct{}

func (g *Crash) Name() string {
	return model.GameCrash
}

// CrashPoint разыгрывает точку краха: max(1.01, e^(3u)), потолок ~20x
func CrashPoint(src Source) float64 {
	return math.Max(1.01, math.Exp(3*src.Float64()))
}

// Play - мгновенный раунд. Кэшаут должен случиться строго раньше
// точки краха, поэтому выигрыш только при crashPoint > target.
func (g *Crash) Play(src Source, p model.BetParams) (Outcome, error) {
	target := clamp(p.Target, 1.01, 1000)
	crashPoint := CrashPoint(src)

	payoutMult := 0.0
	if crashPoint > target {
		payoutMult = target
	}

	return Outcome{
		Multiplier: payoutMult,
		Payload: map[string]any{
			"crash_point": crashPoint,
			"target":      target,
			"won":         payoutMult > 0,
		},
	}, nil
}
