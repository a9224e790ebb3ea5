package system

import (
	"testing"

	"missile-defense/internal/component"
	"missile-defense/internal/event"
)

func TestOutcome(t *testing.T) {
	live := &component.Battery{Active: true}
	dead := &component.Battery{}
	tests := []struct {
		name      string
		score     int
		batteries []*component.Battery
		want      component.Phase
		done      bool
	}{
		{"playing", 980, []*component.Battery{dead, live}, component.PhasePlaying, false},
		{"win", 1000, []*component.Battery{live}, component.PhaseWin, true},
		{"win beats game over", 1020, []*component.Battery{dead, dead}, component.PhaseWin, true},
		{"game over", 999, []*component.Battery{dead, dead, dead}, component.PhaseGameOver, true},
		{"no batteries", 0, nil, component.PhaseGameOver, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, done := Outcome(tc.score, tc.batteries)
			if got != tc.want || done != tc.done {
				t.Fatalf("Outcome = %s,%v want %s,%v", got, done, tc.want, tc.done)
			}
		})
	}
}

func TestEvaluateTransitionsOnce(t *testing.T) {
	w := newTestWorld()
	batteries := w.addBatteries()
	for _, b := range batteries {
		b.Active = false
	}
	var phases []event.PhaseData
	w.events.SubscribeFunc(event.PhaseChanged, func(e event.Event) {
		phases = append(phases, e.Data.(event.PhaseData))
	})
	ss := NewStateSystem(w.ecs, w.events)

	if !ss.Evaluate(w.session) {
		t.Fatalf("expected terminal transition")
	}
	if w.session.Phase != component.PhaseGameOver {
		t.Fatalf("phase = %s", w.session.Phase)
	}
	if ss.Evaluate(w.session) {
		t.Fatalf("terminal phase evaluated twice")
	}
	if len(phases) != 1 || phases[0].From != component.PhasePlaying || phases[0].To != component.PhaseGameOver {
		t.Fatalf("phase events = %+v", phases)
	}
}
