package games

import "charlies_odds_backend/internal/model"

// Blackjack - одиночная раздача из одной колоды без докупок по решению
// игрока: игрок добирает до 17, дилер добирает до 17, потом сравнение.
// Натуральный блэкджек платит 3:2, ничья возвращает ставку.
type Blackjack struct{}

func (g *Blackjack) Name() string {
	return model.GameBlackjack
}

func (g *Blackjack) Play(src Source, p model.BetParams) (Outcome, error) {
	deck := newDeck()
	shuffleDeck(deck, src)

	// Стандартный порядок раздачи: игрок, дилер, игрок, дилер
	player := []Card{deck[0], deck[2]}
	dealer := []Card{deck[1], deck[3]}
	next := 4

	draw := func() Card {
		c := deck[next]
		next++
		return c
	}

	playerNatural := handValue(player) == 21
	dealerNatural := handValue(dealer) == 21

	// Добор карт; при натуральном блэкджеке рука закрыта сразу
	if !playerNatural && !dealerNatural {
		for handValue(player) < 17 {
			player = append(player, draw())
		}
		if handValue(player) <= 21 {
			for handValue(dealer) < 17 {
				dealer = append(dealer, draw())
			}
		}
	}

	playerValue := handValue(player)
	dealerValue := handValue(dealer)

	var mult float64
	var outcome string
	switch {
	case playerNatural && dealerNatural:
		mult, outcome = 1, "push"
	case playerNatural:
		mult, outcome = 2.5, "blackjack"
	case dealerNatural:
		mult, outcome = 0, "dealer_blackjack"
	case playerValue > 21:
		mult, outcome = 0, "bust"
	case dealerValue > 21:
		mult, outcome = 2, "dealer_bust"
	case playerValue > dealerValue:
		mult, outcome = 2, "win"
	case playerValue < dealerValue:
		mult, outcome = 0, "lose"
	default:
		mult, outcome = 1, "push"
	}

	return Outcome{
		Multiplier: mult,
		Payload: map[string]any{
			"player_cards": handStrings(player),
			"dealer_cards": handStrings(dealer),
			"player_value": playerValue,
			"dealer_value": dealerValue,
			"outcome":      outcome,
		},
	}, nil
}
