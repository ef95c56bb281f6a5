// Package server exposes games over the Model Context Protocol. Each
// session is an independent engine-driven game addressed by id; actions
// are submitted by their position in the rendered legal-action list.
package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manacore/manacore-go/internal/game"
)

// Session is one running game and the replay trail that reproduces it.
type Session struct {
	ID     string
	State  *game.GameState
	Replay game.Replay
}

// Service owns the sessions. All methods are safe for concurrent use;
// the engine itself is stateless so only the session map needs the lock.
type Service struct {
	mu       sync.Mutex
	engine   *game.Engine
	decks    []game.Decklist
	sessions map[string]*Session
	seeds    game.RNG
	log      *zap.Logger
}

// NewService builds a service over the given deck pool. The first two
// decks are the defaults when a start request names none.
func NewService(e *game.Engine, decks []game.Decklist, seed uint64, log *zap.Logger) (*Service, error) {
	if len(decks) < 2 {
		return nil, fmt.Errorf("need at least two decks, have %d", len(decks))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		engine:   e,
		decks:    decks,
		sessions: make(map[string]*Session),
		seeds:    game.NewRNG(seed),
		log:      log,
	}, nil
}

// Engine exposes the underlying rules engine for rendering.
func (svc *Service) Engine() *game.Engine { return svc.engine }

// DeckNames lists the configured decks.
func (svc *Service) DeckNames() []string {
	names := make([]string, len(svc.decks))
	for i, d := range svc.decks {
		names[i] = d.Name
	}
	return names
}

func (svc *Service) deckByName(name string, fallback int) (game.Decklist, error) {
	if name == "" {
		return svc.decks[fallback], nil
	}
	for _, d := range svc.decks {
		if d.Name == name {
			return d, nil
		}
	}
	return game.Decklist{}, fmt.Errorf("unknown deck %q (have %v)", name, svc.DeckNames())
}

// StartGame creates a session. Seed 0 asks for a fresh server-chosen
// seed; the chosen value is recorded in the session replay either way.
func (svc *Service) StartGame(deckOne, deckTwo string, seed uint64) (*Session, error) {
	a, err := svc.deckByName(deckOne, 0)
	if err != nil {
		return nil, err
	}
	b, err := svc.deckByName(deckTwo, 1)
	if err != nil {
		return nil, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if seed == 0 {
		seed = svc.seeds.Next()
	}
	s, err := svc.engine.NewGame(a, b, seed)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:     uuid.NewString(),
		State:  s,
		Replay: game.Replay{Seed: seed, DeckA: a, DeckB: b},
	}
	svc.sessions[sess.ID] = sess
	svc.log.Info("game started",
		zap.String("game_id", sess.ID),
		zap.Uint64("seed", seed),
		zap.String("deck_one", a.Name),
		zap.String("deck_two", b.Name))
	return sess, nil
}

// Get returns a session by id.
func (svc *Service) Get(id string) (*Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	sess, ok := svc.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no game with id %q", id)
	}
	return sess, nil
}

// TakeAction applies the idx-th legal action of the current priority
// holder and returns the updated session.
func (svc *Service) TakeAction(id string, idx int) (*Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	sess, ok := svc.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no game with id %q", id)
	}
	next, err := svc.engine.ApplyIndex(sess.State, sess.State.Priority, idx)
	if err != nil {
		return nil, err
	}
	sess.State = next
	sess.Replay.Record(idx)
	return sess, nil
}

// Concede ends the session's game for the given seat.
func (svc *Service) Concede(id string, player game.PlayerID) (*Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	sess, ok := svc.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no game with id %q", id)
	}
	next, err := svc.engine.Apply(sess.State, game.Action{Type: game.ActionConcede, Player: player})
	if err != nil {
		return nil, err
	}
	sess.State = next
	svc.log.Info("game conceded", zap.String("game_id", id), zap.String("player", string(player)))
	return sess, nil
}
