package games

import (
	"testing"

	"charlies_odds_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlinkoEdgesPayMaximum(t *testing.T) {
	g := &Plinko{}

	// Шарик, всё время отскакивающий вправо, упирается в стенку
	// и попадает в крайнюю лунку
	out, err := g.Play(&seqSource{vals: []float64{0.9}}, model.BetParams{})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, out.Multiplier)
	assert.Equal(t, 16, out.Payload["slot"])

	// Всё время влево - крайняя левая лунка
	out, err = g.Play(&seqSource{vals: []float64{0.1}}, model.BetParams{})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, out.Multiplier)
	assert.Equal(t, 0, out.Payload["slot"])
}

func TestPlinkoAlwaysPays(t *testing.T) {
	g := &Plinko{}
	src := &lcgSource{state: 7}

	// Любая лунка платит хотя бы частичный возврат
	for i := 0; i < 500; i++ {
		out, err := g.Play(src, model.BetParams{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, out.Multiplier, 0.5)

		slot := out.Payload["slot"].(int)
		assert.GreaterOrEqual(t, slot, 0)
		assert.Less(t, slot, len(plinkoMultipliers))
		assert.Equal(t, plinkoMultipliers[slot], out.Multiplier)
	}
}

func TestPlinkoTableIsSymmetric(t *testing.T) {
	n := len(plinkoMultipliers)
	for i := 0; i < n/2; i++ {
		assert.Equal(t, plinkoMultipliers[i], plinkoMultipliers[n-1-i])
	}
}
