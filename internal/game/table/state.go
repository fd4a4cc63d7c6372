package table

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// GameStateInput is the wire shape of POST /gto_tip. Every field is optional
// and kept raw so a badly typed field falls back to its default in Normalize
// instead of failing the whole body.
type GameStateInput struct {
	Hand            json.RawMessage `json:"hand"`
	Community       json.RawMessage `json:"community"`
	OpponentActions json.RawMessage `json:"opponent_actions"`
	Pot             json.RawMessage `json:"pot"`
	Chips           json.RawMessage `json:"chips"`
	CurrentBet      json.RawMessage `json:"current_bet"`
	Stage           json.RawMessage `json:"stage"`
	Position        json.RawMessage `json:"position"`
	NumPlayers      json.RawMessage `json:"num_players"`
}

// GameState is a fully defaulted snapshot, see Normalize.
type GameState struct {
	Hand            []string
	Community       []string
	OpponentActions []string // "" marks a player with no recorded action
	Pot             float64
	Chips           float64
	CurrentBet      float64
	Stage           string
	Position        string
	NumPlayers      int
}

const (
	DefaultStage      = "Unknown"
	DefaultPosition   = "SB"
	DefaultNumPlayers = 2
)

// Normalize fills every absent or malformed field with its default. It is the
// only place defaults are applied and it never fails.
//
//   - hand: non-array or empty becomes ["unknown","unknown"]
//   - community: non-array becomes empty, non-string cards are dropped
//   - opponent_actions: non-string entries count as no action
//   - pot, chips, current_bet: numbers or numeric strings, else 0
//   - num_players: whole numbers (2 or 2.0) or numeric strings, else 2
//   - stage, position: strings, else their defaults
func (in GameStateInput) Normalize() GameState {
	gs := GameState{
		Hand:            stringList(in.Hand, false),
		Community:       stringList(in.Community, false),
		OpponentActions: stringList(in.OpponentActions, true),
		Pot:             number(in.Pot, 0),
		Chips:           number(in.Chips, 0),
		CurrentBet:      number(in.CurrentBet, 0),
		Stage:           text(in.Stage, DefaultStage),
		Position:        text(in.Position, DefaultPosition),
		NumPlayers:      wholeNumber(in.NumPlayers, DefaultNumPlayers),
	}
	if len(gs.Hand) == 0 {
		gs.Hand = []string{UnknownCard, UnknownCard}
	}
	return gs
}

// stringList decodes a JSON array of strings. With keepSlots a non-string
// element becomes "", otherwise it is dropped.
func stringList(raw json.RawMessage, keepSlots bool) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil || isNull(item) {
			if keepSlots {
				out = append(out, "")
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// isNull is true for absent fields and JSON null, which json.Unmarshal
// otherwise accepts silently into any target.
func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func number(raw json.RawMessage, fallback float64) float64 {
	if isNull(raw) {
		return fallback
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return fallback
}

func wholeNumber(raw json.RawMessage, fallback int) int {
	f := number(raw, math.NaN())
	if math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fallback
	}
	return int(f)
}

func text(raw json.RawMessage, fallback string) string {
	var s string
	if isNull(raw) {
		return fallback
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return fallback
	}
	return s
}

// HoleCardsKnown reports whether both hole cards were dealt to the client.
func (gs GameState) HoleCardsKnown() bool {
	return len(gs.Hand) == 2 && gs.Hand[0] != UnknownCard
}

// HandString renders the hole cards for the prompt.
func (gs GameState) HandString() string {
	if len(gs.Hand) == 0 || gs.Hand[0] == UnknownCard {
		return UnknownCard
	}
	return strings.Join(gs.Hand, ", ")
}

// CommunityString renders the board for the prompt.
func (gs GameState) CommunityString() string {
	if len(gs.Community) == 0 {
		return "none"
	}
	return strings.Join(gs.Community, ", ")
}

// FormatAmount prints chip amounts in their shortest decimal form (100, 12.5).
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
