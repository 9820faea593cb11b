package games

import (
	"testing"

	"charlies_odds_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWheelSegments(t *testing.T) {
	g := &Wheel{}

	tests := []struct {
		u       float64
		segment int
		mult    float64
	}{
		{0, 0, 1.5},
		{0.625, 7, 10}, // джекпот-сегмент
		{0.99, 11, 1.5},
	}

	for _, tc := range tests {
		out, err := g.Play(&seqSource{vals: []float64{tc.u}}, model.BetParams{})
		require.NoError(t, err)
		assert.Equal(t, tc.segment, out.Payload["segment"], "u=%v", tc.u)
		assert.Equal(t, tc.mult, out.Multiplier, "u=%v", tc.u)
	}
}

func TestWheelAlwaysLandsOnSegment(t *testing.T) {
	g := &Wheel{}
	src := &lcgSource{state: 42}

	for i := 0; i < 500; i++ {
		out, err := g.Play(src, model.BetParams{})
		require.NoError(t, err)

		segment := out.Payload["segment"].(int)
		require.GreaterOrEqual(t, segment, 0)
		require.Less(t, segment, len(wheelSegments))
		assert.Equal(t, wheelSegments[segment], out.Multiplier)
	}
}
