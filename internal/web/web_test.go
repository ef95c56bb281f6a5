package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manacore/manacore-go/internal/bot"
	"github.com/manacore/manacore-go/internal/cards"
	"github.com/manacore/manacore-go/internal/game"
)

func newHub(t *testing.T) *Hub {
	t.Helper()
	a, b := cards.DefaultDecks()
	return NewHub(game.New(cards.Builtin()), a, b, bot.NewGreedy(), 1, nil)
}

func startGame(t *testing.T, h *Hub) *webGame {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	seed := h.seeds.Next()
	s, err := h.engine.NewGame(h.deckA, h.deckB, seed)
	require.NoError(t, err)
	g := &webGame{id: "g1", state: s, replay: game.Replay{Seed: seed, DeckA: h.deckA, DeckB: h.deckB}}
	h.games[g.id] = g
	require.NoError(t, h.runOpponent(g))
	return g
}

func TestAdvanceHandsTurnToBotAndBack(t *testing.T) {
	h := newHub(t)
	g := startGame(t, h)

	// After setup the human must hold priority.
	require.Equal(t, game.PlayerOne, g.state.Priority)

	h.mu.Lock()
	defer h.mu.Unlock()
	for i := 0; i < 60 && !g.state.GameOver; i++ {
		require.NoError(t, h.advance(g, 0))
		if !g.state.GameOver {
			assert.Equal(t, game.PlayerOne, g.state.Priority,
				"bot returned control while holding priority")
		}
	}
}

func TestAdvanceRejectsOutOfTurnAndBadIndex(t *testing.T) {
	h := newHub(t)
	g := startGame(t, h)

	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.advance(g, 10_000)
	assert.Error(t, err)

	g.state.Priority = game.PlayerTwo
	err = h.advance(g, 0)
	assert.ErrorIs(t, err, game.ErrNotYourTurn)
}

func TestBuildViewHidesOpponentHand(t *testing.T) {
	h := newHub(t)
	g := startGame(t, h)

	view := BuildView(h.engine, g.id, g.state, game.PlayerOne)

	assert.Equal(t, g.id, view.GameID)
	assert.Len(t, view.Hand, len(g.state.Player(game.PlayerOne).Hand))
	for _, pv := range view.Players {
		assert.Empty(t, pv.Battlefield, "fresh game has a populated battlefield")
		if pv.ID == string(game.PlayerTwo) {
			assert.Equal(t, len(g.state.Player(game.PlayerTwo).Hand), pv.HandCount)
		}
	}
	// Human holds priority, so the view carries submittable actions.
	require.NotEmpty(t, view.Actions)
	assert.Equal(t, 0, view.Actions[0].Index)
}

func TestBuildViewReplayStaysConsistent(t *testing.T) {
	h := newHub(t)
	g := startGame(t, h)

	h.mu.Lock()
	for i := 0; i < 30 && !g.state.GameOver; i++ {
		require.NoError(t, h.advance(g, 0))
	}
	h.mu.Unlock()

	replayed, err := h.engine.Run(g.replay)
	require.NoError(t, err)
	assert.Equal(t, g.state.Fingerprint(), replayed.Fingerprint())
}
