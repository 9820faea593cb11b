package games

import (
	"testing"

	"charlies_odds_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimboMultiplierBands(t *testing.T) {
	tests := []struct {
		u    float64
		want float64
	}{
		{0, 1.01}, // нижняя граница поднимается до 1.01
		{0.25, 1.5},
		{0.5, 2},
		{0.65, 3.5},
		{0.8, 5},
		{0.9, 15},
		{0.95, 20},
		{0.99, 804},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, limboMultiplier(tc.u), 1e-9, "u=%v", tc.u)
	}
}

func TestLimboBandEdgesAreContinuous(t *testing.T) {
	// На стыках полос скачков нет
	const eps = 1e-9
	for _, edge := range []float64{0.5, 0.8, 0.95} {
		below := limboMultiplier(edge - eps)
		at := limboMultiplier(edge)
		assert.InDelta(t, at, below, 1e-6, "edge=%v", edge)
	}
}

func TestLimboCap(t *testing.T) {
	// Верхняя граница стремится к 1000x и не выходит за неё
	m := limboMultiplier(0.99999999)
	assert.InDelta(t, 1000, m, 0.01)
	assert.LessOrEqual(t, m, 1000.0)
}

func TestLimboPlay(t *testing.T) {
	g := &Limbo{}

	// u=0.5 даёт 2x: цель 1.5 выигрывает, цель 2.5 нет
	out, err := g.Play(&seqSource{vals: []float64{0.5}}, model.BetParams{Target: 1.5})
	require.NoError(t, err)
	assert.Equal(t, 1.5, out.Multiplier)
	assert.Equal(t, true, out.Payload["won"])

	out, err = g.Play(&seqSource{vals: []float64{0.5}}, model.BetParams{Target: 2.5})
	require.NoError(t, err)
	assert.Zero(t, out.Multiplier)
	assert.Equal(t, false, out.Payload["won"])

	// Результат ровно в цель - выигрыш
	out, err = g.Play(&seqSource{vals: []float64{0.5}}, model.BetParams{Target: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.Multiplier)
}
