package coach

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PokerCoach/internal/game/table"
)

type fakeCompleter struct {
	text   string
	err    error
	prompt string
	calls  int
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.text, f.err
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

func TestService_GetTip(t *testing.T) {
	fc := &fakeCompleter{text: "  /no_think Fold here. "}
	svc := NewService(fc, quietLogger())

	gs := state([]string{"7h", "2c"})
	tip, err := svc.GetTip(context.Background(), gs)
	require.NoError(t, err)
	assert.Equal(t, "Fold here.", tip)
	assert.Equal(t, 1, fc.calls)
	assert.Equal(t, BuildPrompt(gs), fc.prompt)
}

func TestService_GetTip_LogsTruncatedRawText(t *testing.T) {
	raw := strings.Repeat("x", 600) + "TAIL"
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	svc := NewService(&fakeCompleter{text: raw}, logger)

	_, err := svc.GetTip(context.Background(), table.GameStateInput{}.Normalize())
	require.NoError(t, err)

	var rawLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "raw model text") {
			rawLine = line
		}
	}
	require.NotEmpty(t, rawLine)
	assert.Contains(t, rawLine, strings.Repeat("x", 497)+"...")
	assert.NotContains(t, rawLine, strings.Repeat("x", 498))
	assert.NotContains(t, rawLine, "TAIL")
}

func TestService_GetTip_Empty(t *testing.T) {
	svc := NewService(&fakeCompleter{text: "   "}, quietLogger())

	tip, err := svc.GetTip(context.Background(), table.GameStateInput{}.Normalize())
	require.NoError(t, err)
	assert.Equal(t, NoTipText, tip)
}

func TestService_GetTip_BackendError(t *testing.T) {
	svc := NewService(&fakeCompleter{err: errors.New("connection refused")}, quietLogger())

	_, err := svc.GetTip(context.Background(), table.GameStateInput{}.Normalize())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackend)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestService_Analyze(t *testing.T) {
	svc := NewService(&fakeCompleter{}, quietLogger())

	a := svc.Analyze(state([]string{"Ah", "Kh"}, "Qh", "Jh", "2c"))
	assert.Equal(t, "Ah, Kh", a.Hand)
	assert.Equal(t, "suited", a.HandType)
	assert.Equal(t, "strong", a.Strength)
	assert.Equal(t, "connector", a.Connector)
	assert.Equal(t, "Qh, Jh, 2c", a.Community)
	assert.Equal(t, "you have a flush draw with 4 h cards", a.FlushPotential)
	assert.Equal(t, "None", a.OpponentActions)
	assert.NotEmpty(t, a.MadeHand)
}
