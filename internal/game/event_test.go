package game

import (
	"strings"
	"testing"
)

func TestLogEntriesCarryTypePlayerAndMessage(t *testing.T) {
	e, s := newTestGame(t, 1)
	s = pass(t, e, s)
	s = pass(t, e, s) // untap to upkeep

	if len(s.Log) == 0 {
		t.Fatal("no log entries after game start and a step change")
	}
	sawStart, sawStep := false, false
	for _, ev := range s.Log {
		if ev.Type == "" || ev.Message == "" {
			t.Fatalf("log entry missing type or message: %+v", ev)
		}
		switch ev.Type {
		case EventGameStart:
			sawStart = true
		case EventStepChange:
			sawStep = true
			if ev.Player != s.Active {
				t.Fatalf("step change attributed to %s, active is %s", ev.Player, s.Active)
			}
		}
	}
	if !sawStart || !sawStep {
		t.Fatalf("log missing expected entries: start=%t step=%t", sawStart, sawStep)
	}
}

func TestEventStringRendersTypeAndMessage(t *testing.T) {
	ev := Event{Type: EventDraw, Player: PlayerOne, Message: "player1 draws a card"}
	got := ev.String()
	if !strings.Contains(got, string(EventDraw)) || !strings.Contains(got, "draws a card") {
		t.Fatalf("String() = %q", got)
	}
}
