package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/manacore/manacore-go/internal/game"
)

// RegisterTools wires the game tools onto an MCP server.
func RegisterTools(s *server.MCPServer, svc *Service) {
	s.AddTool(startGameTool(svc), svc.handleStartGame)
	s.AddTool(getStateTool(), svc.handleGetState)
	s.AddTool(legalActionsTool(), svc.handleLegalActions)
	s.AddTool(takeActionTool(), svc.handleTakeAction)
	s.AddTool(concedeTool(), svc.handleConcede)
}

func startGameTool(svc *Service) mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new two-player duel and return its game_id plus the opening state. "+
			"Available decks: "+strings.Join(svc.DeckNames(), ", ")+"."),
		mcp.WithString("deck_one", mcp.Description("Deck name for player1 (defaults to the first configured deck)")),
		mcp.WithString("deck_two", mcp.Description("Deck name for player2 (defaults to the second configured deck)")),
		mcp.WithNumber("seed", mcp.Description("Deterministic shuffle seed; 0 or omitted lets the server pick")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Return the current state of a game. Read-only."),
		mcp.WithString("game_id", mcp.Required(), mcp.Description("Id returned by start_game")),
	)
}

func legalActionsTool() mcp.Tool {
	return mcp.NewTool("legal_actions",
		mcp.WithDescription("List the numbered legal actions for the player currently holding priority. "+
			"Submit a choice with take_action using the same number."),
		mcp.WithString("game_id", mcp.Required(), mcp.Description("Id returned by start_game")),
	)
}

func takeActionTool() mcp.Tool {
	return mcp.NewTool("take_action",
		mcp.WithDescription("Apply one legal action for the priority holder, by its index in legal_actions."),
		mcp.WithString("game_id", mcp.Required(), mcp.Description("Id returned by start_game")),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index into the legal action list")),
	)
}

func concedeTool() mcp.Tool {
	return mcp.NewTool("concede",
		mcp.WithDescription("Concede the game for one seat, ending it immediately."),
		mcp.WithString("game_id", mcp.Required(), mcp.Description("Id returned by start_game")),
		mcp.WithString("player", mcp.Required(), mcp.Description("Conceding seat: player1 or player2")),
	)
}

func (svc *Service) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deckOne := request.GetString("deck_one", "")
	deckTwo := request.GetString("deck_two", "")
	seed := request.GetInt("seed", 0)
	if seed < 0 {
		return mcp.NewToolResultError("seed must be non-negative"), nil
	}

	sess, err := svc.StartGame(deckOne, deckTwo, uint64(seed))
	if err != nil {
		return mcp.NewToolResultErrorf("start game: %v", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("game_id: %s\nseed: %d\n\n%s",
		sess.ID, sess.Replay.Seed, RenderState(svc.engine, sess.State))), nil
}

func (svc *Service) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("game_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sess, err := svc.Get(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(RenderState(svc.engine, sess.State)), nil
}

func (svc *Service) handleLegalActions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("game_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sess, err := svc.Get(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if sess.State.GameOver {
		return mcp.NewToolResultError("the game is over"), nil
	}
	actions, err := svc.engine.LegalActionsChecked(sess.State, sess.State.Priority)
	if err != nil {
		return mcp.NewToolResultErrorf("enumerate actions: %v", err), nil
	}
	return mcp.NewToolResultText(RenderActions(svc.engine, sess.State, actions)), nil
}

func (svc *Service) handleTakeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("game_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	idx := request.GetInt("index", -1)
	if idx < 0 {
		return mcp.NewToolResultError("index must be a non-negative integer"), nil
	}

	sess, err := svc.TakeAction(id, idx)
	if err != nil {
		return mcp.NewToolResultErrorf("take action: %v", err), nil
	}
	return mcp.NewToolResultText(RenderState(svc.engine, sess.State)), nil
}

func (svc *Service) handleConcede(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("game_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	player, err := request.RequireString("player")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if p := game.PlayerID(player); p != game.PlayerOne && p != game.PlayerTwo {
		return mcp.NewToolResultErrorf("player must be %s or %s", game.PlayerOne, game.PlayerTwo), nil
	}

	sess, err := svc.Concede(id, game.PlayerID(player))
	if err != nil {
		return mcp.NewToolResultErrorf("concede: %v", err), nil
	}
	return mcp.NewToolResultText(RenderState(svc.engine, sess.State)), nil
}
