package coach

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"PokerCoach/internal/game/table"
	"PokerCoach/internal/utils"
)

// rawLogLimit caps how much of the model output is logged.
const rawLogLimit = 500

// ErrBackend wraps every failure talking to the completion server.
var ErrBackend = errors.New("completion backend failure")

// Completer produces raw completion text for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	llm    Completer
	logger *log.Logger
}

func NewService(llm Completer, logger *log.Logger) *Service {
	return &Service{llm: llm, logger: logger}
}

// GetTip builds the prompt, asks the model and returns the cleaned tip.
func (s *Service) GetTip(ctx context.Context, gs table.GameState) (string, error) {
	prompt := BuildPrompt(gs)
	s.logger.Debug("built prompt", "prompt", prompt)

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackend, err)
	}
	s.logger.Debug("raw model text", "text", utils.Truncate(raw, rawLogLimit))

	tip := CleanTip(raw)
	s.logger.Debug("cleaned tip", "tip", tip)
	return tip, nil
}

// Analysis is the model-free breakdown served by POST /analyze.
type Analysis struct {
	Hand            string `json:"hand"`
	HandType        string `json:"hand_type"`
	Strength        string `json:"strength"`
	Connector       string `json:"connector"`
	Community       string `json:"community"`
	FlushPotential  string `json:"flush_potential"`
	OpponentActions string `json:"opponent_actions"`
	MadeHand        string `json:"made_hand,omitempty"`
}

// Analyze returns the facts that would be embedded in the prompt.
func (s *Service) Analyze(gs table.GameState) Analysis {
	facts := ClassifyHand(gs)
	a := Analysis{
		Hand:            gs.HandString(),
		HandType:        facts.Type,
		Strength:        facts.Strength,
		Connector:       facts.ConnectorLabel(),
		Community:       gs.CommunityString(),
		FlushPotential:  FlushPotential(gs),
		OpponentActions: FormatOpponentActions(gs.OpponentActions),
	}
	if desc, ok := DescribeMadeHand(gs); ok {
		a.MadeHand = desc
	}
	return a
}
