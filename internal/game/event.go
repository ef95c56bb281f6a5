package game

import "fmt"

// EventType identifies an entry in the game's event log.
type EventType string

const (
	EventGameStart  EventType = "GAME_START"
	EventStepChange EventType = "STEP_CHANGE"
	EventTurnChange EventType = "TURN_CHANGE"
	EventDraw       EventType = "DRAW"
	EventPlayLand   EventType = "PLAY_LAND"
	EventTapForMana EventType = "TAP_FOR_MANA"
	EventCast       EventType = "CAST"
	EventResolve    EventType = "RESOLVE"
	EventFizzle     EventType = "FIZZLE"
	EventAttack     EventType = "ATTACK"
	EventBlock      EventType = "BLOCK"
	EventDamage     EventType = "DAMAGE"
	EventDestroy    EventType = "DESTROY"
	EventLifeChange EventType = "LIFE_CHANGE"
	EventDiscard    EventType = "DISCARD"
	EventTokens     EventType = "TOKENS"
	EventConcede    EventType = "CONCEDE"
	EventGameOver   EventType = "GAME_OVER"
)

// Event is one entry in the append-only log carried inside GameState. The
// engine performs no I/O; the log is its only observability channel, and
// consumers decide what to render or forward.
type Event struct {
	Type    EventType
	Player  PlayerID
	Message string
}

func (ev Event) String() string {
	if ev.Message != "" {
		return fmt.Sprintf("[%s] %s", ev.Type, ev.Message)
	}
	return string(ev.Type)
}

func (s *GameState) logf(t EventType, player PlayerID, format string, args ...any) {
	s.Log = append(s.Log, Event{
		Type:    t,
		Player:  player,
		Message: fmt.Sprintf(format, args...),
	})
}
