package games

import (
	"testing"

	"charlies_odds_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValue(t *testing.T) {
	assert.Equal(t, 11, cardValue("A"))
	assert.Equal(t, 10, cardValue("K"))
	assert.Equal(t, 10, cardValue("Q"))
	assert.Equal(t, 10, cardValue("J"))
	assert.Equal(t, 10, cardValue("10"))
	assert.Equal(t, 7, cardValue("7"))
	assert.Equal(t, 2, cardValue("2"))
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		hand  []Card
		value int
	}{
		{
			name:  "натуральный блэкджек",
			hand:  []Card{{Rank: "A"}, {Rank: "K"}},
			value: 21,
		},
		{
			name:  "туз понижается до единицы",
			hand:  []Card{{Rank: "A"}, {Rank: "9"}, {Rank: "5"}},
			value: 15,
		},
		{
			name:  "два туза",
			hand:  []Card{{Rank: "A"}, {Rank: "A"}},
			value: 12,
		},
		{
			name:  "оба туза понижаются",
			hand:  []Card{{Rank: "A"}, {Rank: "A"}, {Rank: "10"}, {Rank: "9"}},
			value: 21,
		},
		{
			name:  "перебор без тузов",
			hand:  []Card{{Rank: "K"}, {Rank: "Q"}, {Rank: "5"}},
			value: 25,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.value, handValue(tc.hand))
		})
	}
}

func TestNewDeck(t *testing.T) {
	deck := newDeck()
	require.Len(t, deck, 52)

	seen := map[Card]bool{}
	for _, c := range deck {
		require.False(t, seen[c], "карта %v встретилась дважды", c)
		seen[c] = true
	}
}

func TestShuffleDeckKeepsCards(t *testing.T) {
	deck := newDeck()
	shuffleDeck(deck, &lcgSource{state: 7})

	require.Len(t, deck, 52)

	seen := map[Card]bool{}
	for _, c := range deck {
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestBlackjackPlayInvariants(t *testing.T) {
	g := &Blackjack{}
	src := &lcgSource{state: 99}

	validMults := map[float64]bool{0: true, 1: true, 2: true, 2.5: true}

	for i := 0; i < 300; i++ {
		out, err := g.Play(src, model.BetParams{})
		require.NoError(t, err)
		require.True(t, validMults[out.Multiplier], "неожиданный множитель %v", out.Multiplier)

		playerCards := out.Payload["player_cards"].([]string)
		dealerCards := out.Payload["dealer_cards"].([]string)
		playerValue := out.Payload["player_value"].(int)
		dealerValue := out.Payload["dealer_value"].(int)
		outcome := out.Payload["outcome"].(string)

		require.GreaterOrEqual(t, len(playerCards), 2)
		require.GreaterOrEqual(t, len(dealerCards), 2)

		switch outcome {
		case "blackjack":
			assert.Equal(t, 2.5, out.Multiplier)
			assert.Equal(t, 21, playerValue)
			assert.Len(t, playerCards, 2)
		case "dealer_blackjack":
			assert.Equal(t, 0.0, out.Multiplier)
			assert.Equal(t, 21, dealerValue)
			assert.Len(t, dealerCards, 2)
		case "bust":
			assert.Equal(t, 0.0, out.Multiplier)
			assert.Greater(t, playerValue, 21)
		case "dealer_bust":
			assert.Equal(t, 2.0, out.Multiplier)
			assert.LessOrEqual(t, playerValue, 21)
			assert.Greater(t, dealerValue, 21)
		case "win":
			assert.Equal(t, 2.0, out.Multiplier)
			assert.Greater(t, playerValue, dealerValue)
		case "lose":
			assert.Equal(t, 0.0, out.Multiplier)
			assert.Less(t, playerValue, dealerValue)
		case "push":
			assert.Equal(t, 1.0, out.Multiplier)
		default:
			t.Fatalf("неизвестный исход %q", outcome)
		}

		// Обе руки добираются минимум до 17, если никто не перебрал
		// и не было натурального блэкджека
		if outcome == "win" || outcome == "lose" {
			assert.GreaterOrEqual(t, playerValue, 17)
			assert.GreaterOrEqual(t, dealerValue, 17)
		}
	}
}
