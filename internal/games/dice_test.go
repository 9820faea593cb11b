package games

import (
	"testing"

	"charlies_odds_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiceRollUnder(t *testing.T) {
	g := &Dice{}

	// Множитель 2x при преимуществе 1%: шанс выигрыша 49.5,
	// порог броска 49.5
	tests := []struct {
		name string
		u    float64
		won  bool
	}{
		{"well below target", 0.40, true},
		{"just below target", 0.4949, true},
		{"exactly at target", 0.495, false},
		{"above target", 0.60, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := g.Play(&seqSource{vals: []float64{tc.u}}, model.BetParams{
				Multiplier: 2,
				RollUnder:  true,
				HouseEdge:  1,
			})
			require.NoError(t, err)

			if tc.won {
				assert.Equal(t, 2.0, out.Multiplier)
			} else {
				assert.Zero(t, out.Multiplier)
			}
			assert.Equal(t, tc.won, out.Payload["won"])
			assert.Equal(t, 49.5, out.Payload["target"])
		})
	}
}

func TestDiceRollOver(t *testing.T) {
	g := &Dice{}

	// Порог при roll over: 100 - 49.5 = 50.5, выигрыш строго выше
	out, err := g.Play(&seqSource{vals: []float64{0.505}}, model.BetParams{
		Multiplier: 2,
		HouseEdge:  1,
	})
	require.NoError(t, err)
	assert.Zero(t, out.Multiplier)

	out, err = g.Play(&seqSource{vals: []float64{0.5051}}, model.BetParams{
		Multiplier: 2,
		HouseEdge:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.Multiplier)
}

func TestDiceClampsMultiplier(t *testing.T) {
	g := &Dice{}

	// Запредельный множитель приводится к потолку 100x
	out, err := g.Play(&seqSource{vals: []float64{0.0001}}, model.BetParams{
		Multiplier: 5000,
		RollUnder:  true,
		HouseEdge:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Multiplier)
	assert.InDelta(t, 0.99, out.Payload["target"], 1e-9)
}

func TestDiceDefaultHouseEdge(t *testing.T) {
	g := &Dice{}

	// Нулевое преимущество трактуется как 1%
	out, err := g.Play(&seqSource{vals: []float64{0.9}}, model.BetParams{
		Multiplier: 2,
		RollUnder:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 49.5, out.Payload["target"])
}

func TestDiceRollPrecision(t *testing.T) {
	g := &Dice{}

	// Бросок дискретен с шагом 0.01
	out, err := g.Play(&seqSource{vals: []float64{0.123456}}, model.BetParams{
		Multiplier: 2,
		RollUnder:  true,
		HouseEdge:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 12.34, out.Payload["roll"])
}
