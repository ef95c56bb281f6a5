package game

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned when an action is applied to a terminal state.
var ErrGameOver = errors.New("game is over")

// ErrNotYourTurn is returned by callers that route actions for a specific
// seat when that seat does not hold priority.
var ErrNotYourTurn = errors.New("you do not hold priority")

// IllegalActionError reports an action outside the currently legal set, or
// one that violates a cost, targeting, or timing rule. It is recoverable:
// callers reject and re-prompt, or count it as a bot defect.
type IllegalActionError struct {
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s by %s: %s", e.Action.Type, e.Action.Player, e.Reason)
}

// NoLegalActionsError reports that the engine produced zero legal actions
// for the player holding priority. Every non-terminal state admits at least
// a pass, so this is an engine defect; callers should treat it as fatal and
// keep the state and recent-action trail for a postmortem.
type NoLegalActionsError struct {
	Player PlayerID
	State  *GameState
}

func (e *NoLegalActionsError) Error() string {
	return fmt.Sprintf("engine defect: no legal actions for priority player %s at turn %d %s/%s",
		e.Player, e.State.Turn, e.State.Phase(), e.State.Step())
}

// IndexOutOfRangeError reports an action index outside the legal-action
// list supplied by a positional caller.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("action index %d out of range [0, %d)", e.Index, e.Len)
}
