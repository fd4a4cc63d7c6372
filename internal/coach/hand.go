package coach

import (
	"fmt"
	"strings"

	"PokerCoach/internal/game/table"
)

const (
	unknownLabel      = "unknown"
	connectorLabel    = "connector"
	nonConnectorLabel = "non-connector"
	noFlushText       = "none"
	noActionsText     = "None"
)

// HandFacts are derived from the hole cards for a single prompt.
type HandFacts struct {
	Known     bool
	Type      string // suited | offsuit | unknown
	Strength  string // strong | medium | weak | unknown
	Connected bool
	Gap       int
	HighRank  int
}

// ConnectorLabel is "non-connector" for unknown hands as well.
func (f HandFacts) ConnectorLabel() string {
	if f.Connected {
		return connectorLabel
	}
	return nonConnectorLabel
}

// ClassifyHand rates the two hole cards. Unknown hands are left as "unknown".
func ClassifyHand(gs table.GameState) HandFacts {
	f := HandFacts{Type: unknownLabel, Strength: unknownLabel}
	if !gs.HoleCardsKnown() {
		return f
	}

	c1, c2 := table.ParseCard(gs.Hand[0]), table.ParseCard(gs.Hand[1])
	suited := c1.Suit == c2.Suit

	f.Known = true
	f.Type = "offsuit"
	if suited {
		f.Type = "suited"
	}
	f.Gap = c1.Rank - c2.Rank
	if f.Gap < 0 {
		f.Gap = -f.Gap
	}
	f.Connected = f.Gap <= 2
	f.HighRank = max(c1.Rank, c2.Rank)

	switch {
	case f.HighRank >= 12 || (suited && f.Connected):
		f.Strength = "strong"
	case f.HighRank >= 9 || (f.Connected && f.Gap <= 1):
		f.Strength = "medium"
	default:
		f.Strength = "weak"
	}
	return f
}

// FlushPotential describes a flush draw across hole and board cards.
// Only 4+ cards of one suit produce text; ties go to the suit seen first.
func FlushPotential(gs table.GameState) string {
	if len(gs.Community) == 0 || !gs.HoleCardsKnown() {
		return noFlushText
	}

	var order []string
	counts := make(map[string]int)
	for _, token := range append(append([]string{}, gs.Hand...), gs.Community...) {
		suit := table.ParseCard(token).Suit
		if suit == "" {
			continue
		}
		if _, seen := counts[suit]; !seen {
			order = append(order, suit)
		}
		counts[suit]++
	}

	maxCount, flushSuit := 0, ""
	for _, s := range order {
		if counts[s] > maxCount {
			maxCount, flushSuit = counts[s], s
		}
	}
	if maxCount < 4 {
		return noFlushText
	}

	text := fmt.Sprintf("flush draw with %d %s cards", maxCount, flushSuit)
	if table.ParseCard(gs.Hand[0]).Suit == flushSuit || table.ParseCard(gs.Hand[1]).Suit == flushSuit {
		text = "you have a " + text
	}
	return text
}

// FormatOpponentActions renders "Player i: action" for every recorded action.
func FormatOpponentActions(actions []string) string {
	formatted := make([]string, 0, len(actions))
	for i, a := range actions {
		if a == "" {
			continue
		}
		formatted = append(formatted, fmt.Sprintf("Player %d: %s", i, a))
	}
	if len(formatted) == 0 {
		return noActionsText
	}
	return strings.Join(formatted, "; ")
}
