package games

import (
	"testing"

	"charlies_odds_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource отдаёт заранее заданные значения по кругу
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// lcgSource - детерминированный псевдослучайный источник для
// свойств-тестов: один и тот же сид даёт одну и ту же партию
type lcgSource struct {
	state uint64
}

func (s *lcgSource) Float64() float64 {
	s.state = s.state*6364136223846793005 + 1442695040888963407
	return float64(s.state>>11) / (1 << 53)
}

func TestByName(t *testing.T) {
	for _, name := range []string{
		model.GameDice, model.GameLimbo, model.GameCrash,
		model.GameBlackjack, model.GamePlinko, model.GameWheel,
	} {
		g, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, g.Name())
	}

	_, err := ByName("roulette")
	assert.Error(t, err)
}
