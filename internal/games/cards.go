package games

// Card - игральная карта
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func (c Card) String() string {
	return c.Suit + c.Rank
}

var cardSuits = []string{"♦", "♥", "♠", "♣"}

var cardRanks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// newDeck собирает колоду из 52 карт в фиксированном порядке
func newDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, rank := range cardRanks {
		for _, suit := range cardSuits {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// shuffleDeck перемешивает колоду Фишером-Йетсом на значениях из src
func shuffleDeck(deck []Card, src Source) {
	for i := len(deck) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// cardValue - стоимость карты в блэкджеке; туз считается как 11,
// понижение до 1 делает handValue
func cardValue(rank string) int {
	switch rank {
	case "A":
		return 11
	case "K", "Q", "J", "10":
		return 10
	case "9":
		return 9
	case "8":
		return 8
	case "7":
		return 7
	case "6":
		return 6
	case "5":
		return 5
	case "4":
		return 4
	case "3":
		return 3
	case "2":
		return 2
	default:
		return 0
	}
}

// handValue - лучшая стоимость руки: тузы понижаются с 11 до 1,
// пока сумма больше 21
func handValue(hand []Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += cardValue(c.Rank)
		if c.Rank == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func handStrings(hand []Card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = c.String()
	}
	return out
}
