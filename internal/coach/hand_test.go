package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PokerCoach/internal/game/table"
)

func state(hand []string, community ...string) table.GameState {
	gs := table.GameStateInput{}.Normalize()
	if len(hand) > 0 {
		gs.Hand = hand
	}
	if community != nil {
		gs.Community = community
	}
	return gs
}

func TestClassifyHand(t *testing.T) {
	cases := []struct {
		name      string
		hand      []string
		typ       string
		strength  string
		connector string
	}{
		{"suited broadway", []string{"As", "Ks"}, "suited", "strong", "connector"},
		{"offsuit trash", []string{"7h", "2c"}, "offsuit", "weak", "non-connector"},
		{"high nine", []string{"9c", "4d"}, "offsuit", "medium", "non-connector"},
		{"offsuit connector", []string{"5c", "6d"}, "offsuit", "medium", "connector"},
		{"one gapper", []string{"5c", "7d"}, "offsuit", "weak", "connector"},
		{"suited one gapper", []string{"5h", "7h"}, "suited", "strong", "connector"},
		{"ten parses", []string{"10h", "9h"}, "suited", "strong", "connector"},
		{"queen high", []string{"Qd", "3c"}, "offsuit", "strong", "non-connector"},
		{"unknown", []string{"unknown", "unknown"}, "unknown", "unknown", "non-connector"},
		{"single card", []string{"As"}, "unknown", "unknown", "non-connector"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := ClassifyHand(state(tc.hand))
			assert.Equal(t, tc.typ, f.Type)
			assert.Equal(t, tc.strength, f.Strength)
			assert.Equal(t, tc.connector, f.ConnectorLabel())
		})
	}
}

func TestClassifyHandGap(t *testing.T) {
	f := ClassifyHand(state([]string{"7h", "2c"}))
	assert.True(t, f.Known)
	assert.Equal(t, 5, f.Gap)
	assert.Equal(t, 7, f.HighRank)
	assert.False(t, f.Connected)
}

func TestFlushPotential(t *testing.T) {
	cases := []struct {
		name      string
		hand      []string
		community []string
		want      string
	}{
		{"four hearts with both hole", []string{"Ah", "Kh"}, []string{"Qh", "Jh", "2c"}, "you have a flush draw with 4 h cards"},
		{"board only draw", []string{"Ac", "Kd"}, []string{"2h", "5h", "8h", "Jh"}, "flush draw with 4 h cards"},
		{"five of a suit", []string{"Ah", "2c"}, []string{"3h", "7h", "9h", "Kh"}, "you have a flush draw with 5 h cards"},
		{"three is not enough", []string{"Ah", "2h"}, []string{"Kh", "9c", "4d"}, "none"},
		{"no board", []string{"Ah", "Kh"}, nil, "none"},
		{"unknown hand", []string{"unknown", "unknown"}, []string{"Qh", "Jh", "2h", "3h"}, "none"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FlushPotential(state(tc.hand, tc.community...)))
		})
	}
}

func TestFormatOpponentActions(t *testing.T) {
	assert.Equal(t, "Player 0: raise; Player 2: call", FormatOpponentActions([]string{"raise", "", "call"}))
	assert.Equal(t, "None", FormatOpponentActions(nil))
	assert.Equal(t, "None", FormatOpponentActions([]string{"", ""}))
	assert.Equal(t, "Player 1: fold", FormatOpponentActions([]string{"", "fold"}))
}
