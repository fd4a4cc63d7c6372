package dealer

import (
	"math/rand"

	"PokerCoach/internal/game/table"
)

var (
	suits = []string{"c", "d", "h", "s"}
	ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// Dealer shuffles and deals card tokens in the client's "<rank><suit>" format.
type Dealer struct {
	deck []table.Card
	rnd  *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{
		deck: make([]table.Card, 0, 52),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// NewDeck resets to a full shuffled deck.
func (d *Dealer) NewDeck() {
	d.deck = makeDeck()
	d.rnd.Shuffle(len(d.deck), func(i, j int) { d.deck[i], d.deck[j] = d.deck[j], d.deck[i] })
}

func makeDeck() []table.Card {
	deck := make([]table.Card, 0, 52)
	for _, s := range suits {
		for _, r := range ranks {
			deck = append(deck, table.ParseCard(r+s))
		}
	}
	return deck
}

// DealHoleCards deals two cards to every seat, one round at a time.
func (d *Dealer) DealHoleCards(players int) [][]string {
	out := make([][]string, players)
	for i := 0; i < 2; i++ {
		for p := 0; p < players; p++ {
			out[p] = append(out[p], d.draw().Token)
		}
	}
	return out
}

// DealCommunity deals n board cards (no burn).
func (d *Dealer) DealCommunity(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.draw().Token)
	}
	return out
}

// DealState deals a random snapshot for the given number of players with
// boardSize community cards, seen from seat 0.
func (d *Dealer) DealState(players, boardSize int) table.GameState {
	d.NewDeck()
	holes := d.DealHoleCards(players)
	return table.GameState{
		Hand:            holes[0],
		Community:       d.DealCommunity(boardSize),
		OpponentActions: make([]string, max(players-1, 0)),
		Stage:           stageFor(boardSize),
		Position:        table.DefaultPosition,
		NumPlayers:      players,
	}
}

func stageFor(boardSize int) string {
	switch boardSize {
	case 0:
		return "Preflop"
	case 3:
		return "Flop"
	case 4:
		return "Turn"
	case 5:
		return "River"
	}
	return table.DefaultStage
}

func (d *Dealer) draw() table.Card {
	if len(d.deck) == 0 {
		d.NewDeck()
	}
	c := d.deck[0]
	d.deck = d.deck[1:]
	return c
}
