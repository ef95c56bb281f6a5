package web

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/manacore/manacore-go/internal/bot"
	"github.com/manacore/manacore-go/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // demo server, any origin may connect
	},
}

// Message is the websocket envelope in both directions.
type Message struct {
	Type   string          `json:"type"`
	GameID string          `json:"game_id,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type actionRequest struct {
	Index int `json:"index"`
}

type webGame struct {
	id     string
	state  *game.GameState
	replay game.Replay
}

// Client is one websocket connection.
type Client struct {
	conn   *websocket.Conn
	send   chan []byte
	gameID string
}

// Hub owns the connections and the human-vs-bot games behind them.
type Hub struct {
	engine     *game.Engine
	deckA      game.Decklist
	deckB      game.Decklist
	opponent   bot.Bot
	log        *zap.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client

	mu    sync.Mutex
	games map[string]*webGame
	seeds game.RNG
}

// NewHub builds a hub where the human plays deckA as player1 and the
// given bot answers with deckB.
func NewHub(e *game.Engine, deckA, deckB game.Decklist, opponent bot.Bot, seed uint64, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		engine:     e,
		deckA:      deckA,
		deckB:      deckB,
		opponent:   opponent,
		log:        log,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		games:      make(map[string]*webGame),
		seeds:      game.NewRNG(seed),
	}
}

// Run services connection registration until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Debug("client connected")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Debug("client disconnected")
			}
		}
	}
}

func (h *Hub) handleMessage(client *Client, msg Message) {
	switch msg.Type {
	case "create_game":
		h.createGame(client)
	case "get_state":
		h.withGame(client, msg.GameID, func(g *webGame) error { return nil })
	case "take_action":
		var req actionRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			client.sendError("take_action needs {\"index\": n}")
			return
		}
		h.withGame(client, msg.GameID, func(g *webGame) error {
			return h.advance(g, req.Index)
		})
	default:
		client.sendError("unknown message type " + msg.Type)
	}
}

func (h *Hub) createGame(client *Client) {
	h.mu.Lock()
	seed := h.seeds.Next()
	s, err := h.engine.NewGame(h.deckA, h.deckB, seed)
	if err != nil {
		h.mu.Unlock()
		client.sendError(err.Error())
		return
	}
	g := &webGame{
		id:     uuid.NewString(),
		state:  s,
		replay: game.Replay{Seed: seed, DeckA: h.deckA, DeckB: h.deckB},
	}
	h.games[g.id] = g
	err = h.runOpponent(g)
	h.mu.Unlock()

	if err != nil {
		client.sendError(err.Error())
		return
	}
	client.gameID = g.id
	h.log.Info("web game created", zap.String("game_id", g.id), zap.Uint64("seed", seed))
	client.sendState(h.engine, g)
}

func (h *Hub) withGame(client *Client, gameID string, fn func(*webGame) error) {
	if gameID == "" {
		gameID = client.gameID
	}
	h.mu.Lock()
	g, ok := h.games[gameID]
	var err error
	if ok {
		err = fn(g)
	}
	h.mu.Unlock()

	if !ok {
		client.sendError("no game with id " + gameID)
		return
	}
	if err != nil {
		client.sendError(err.Error())
		return
	}
	client.gameID = gameID
	client.sendState(h.engine, g)
}

// advance applies the human's chosen index, then lets the bot act until
// the human holds priority again or the game ends. Caller holds h.mu.
func (h *Hub) advance(g *webGame, idx int) error {
	if g.state.GameOver {
		return game.ErrGameOver
	}
	if g.state.Priority != game.PlayerOne {
		return game.ErrNotYourTurn
	}
	next, err := h.engine.ApplyIndex(g.state, game.PlayerOne, idx)
	if err != nil {
		return err
	}
	g.state = next
	g.replay.Record(idx)
	return h.runOpponent(g)
}

// runOpponent plays the bot seat until priority returns to the human.
// Caller holds h.mu.
func (h *Hub) runOpponent(g *webGame) error {
	for !g.state.GameOver && g.state.Priority == game.PlayerTwo {
		actions, err := h.engine.LegalActionsChecked(g.state, game.PlayerTwo)
		if err != nil {
			return err
		}
		idx := h.opponent.Choose(h.engine, g.state, game.PlayerTwo, actions)
		next, err := h.engine.ApplyIndex(g.state, game.PlayerTwo, idx)
		if err != nil {
			return err
		}
		g.state = next
		g.replay.Record(idx)
	}
	return nil
}

func (c *Client) sendState(e *game.Engine, g *webGame) {
	view := BuildView(e, g.id, g.state, game.PlayerOne)
	raw, err := json.Marshal(view)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	payload, _ := json.Marshal(Message{Type: "game_state", GameID: g.id, Data: raw})
	select {
	case c.send <- payload:
	default:
	}
}

func (c *Client) sendError(text string) {
	payload, _ := json.Marshal(Message{Type: "error", Error: text})
	select {
	case c.send <- payload:
	default:
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.sendError("bad message: " + err.Error())
			continue
		}
		h.handleMessage(c, msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for raw := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			return
		}
	}
}

// ServeWS upgrades an HTTP request into a game connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &Client{conn: conn, send: make(chan []byte, 256)}
	h.register <- client
	go client.writePump()
	go client.readPump(h)
}
