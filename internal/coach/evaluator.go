package coach

import (
	"fmt"

	"github.com/paulhankin/poker"

	"PokerCoach/internal/game/table"
)

var suitsPH = map[string]poker.Suit{
	"c": poker.Club, "C": poker.Club, "♣": poker.Club,
	"d": poker.Diamond, "D": poker.Diamond, "♦": poker.Diamond,
	"h": poker.Heart, "H": poker.Heart, "♥": poker.Heart,
	"s": poker.Spade, "S": poker.Spade, "♠": poker.Spade,
}

// toPH converts a parsed token to a library card. Ranks are 2..14 here, 1..13 (A=1) there.
func toPH(c table.Card) (poker.Card, error) {
	s, ok := suitsPH[c.Suit]
	if !ok || !c.Valid() {
		var zero poker.Card
		return zero, fmt.Errorf("unrecognised card %q", c.Token)
	}
	r := poker.Rank(c.Rank)
	if c.Rank == 14 {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

// DescribeMadeHand names the best five-card hand from hole + board cards,
// e.g. "pair of kings". ok is false preflop, for unknown hands, or when a card
// cannot be parsed.
func DescribeMadeHand(gs table.GameState) (desc string, ok bool) {
	if !gs.HoleCardsKnown() || len(gs.Community) < 3 || len(gs.Community) > 5 {
		return "", false
	}

	cards := make([]poker.Card, 0, 7)
	seen := make(map[poker.Card]bool, 7)
	for _, token := range append(append([]string{}, gs.Hand...), gs.Community...) {
		pc, err := toPH(table.ParseCard(token))
		if err != nil || seen[pc] {
			return "", false
		}
		seen[pc] = true
		cards = append(cards, pc)
	}

	if len(cards) == 6 {
		cards = bestFive(cards)
	}
	d, err := poker.Describe(cards)
	if err != nil {
		return "", false
	}
	return d, true
}

// bestFive picks the highest scoring 5-card subset.
func bestFive(pcs []poker.Card) []poker.Card {
	var best [5]poker.Card
	bestScore := int16(-1)
	var five [5]poker.Card
	n := len(pcs)
	for skip := 0; skip < n; skip++ {
		k := 0
		for i := 0; i < n && k < 5; i++ {
			if i == skip {
				continue
			}
			five[k] = pcs[i]
			k++
		}
		if score := poker.Eval5(&five); score > bestScore {
			bestScore, best = score, five
		}
	}
	return best[:]
}
