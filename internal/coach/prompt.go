package coach

import (
	"fmt"
	"strings"

	"PokerCoach/internal/game/table"
)

// thinkMarker asks Qwen-style models to skip their reasoning trace.
const thinkMarker = "/no_think"

const promptTemplate = `%[1]s
You are a GTO (Game Theory Optimal) poker coach for No-Limit Hold'em with %[2]d players.
Game state:
- Your hand: %[3]s (%[4]s, %[5]s %[6]s)
- Community cards: %[7]s (%[8]s)
- Stage: %[9]s
- Position: %[10]s
- Pot size: %[11]s
- Your chips: %[12]s
- Opponent actions: %[13]s
- Current bet to call: %[14]s
- Number of players: %[2]d
Provide a **short, single-sentence tip** on the best play: bet, call, raise, or fold.
Calculate pot odds and explain how they apply to the current scenario.
Explain the reason for the tip, considering hand strength, position, and number of opponents.
If raising, specify how you determined the raise amount.
Explain any poker jargon used in simple terms.
%[1]s`

// BuildPrompt turns a normalized game state into the completion prompt.
func BuildPrompt(gs table.GameState) string {
	facts := ClassifyHand(gs)
	prompt := fmt.Sprintf(promptTemplate,
		thinkMarker,
		gs.NumPlayers,
		gs.HandString(),
		facts.Type,
		facts.Strength,
		facts.ConnectorLabel(),
		gs.CommunityString(),
		FlushPotential(gs),
		gs.Stage,
		gs.Position,
		table.FormatAmount(gs.Pot),
		table.FormatAmount(gs.Chips),
		FormatOpponentActions(gs.OpponentActions),
		table.FormatAmount(gs.CurrentBet),
	)
	return strings.TrimSpace(prompt)
}
