// internal/system/state.go
package system

import (
	"log"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
)

// Outcome — чистый предикат конца игры. Победа проверяется раньше поражения.
func Outcome(score int, batteries []*component.Battery) (component.Phase, bool) {
	if score >= config.WinScore {
		return component.PhaseWin, true
	}
	for _, b := range batteries {
		if b.Active {
			return component.PhasePlaying, false
		}
	}
	return component.PhaseGameOver, true
}

// StateSystem переводит сессию в WIN или GAMEOVER в конце тика.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Evaluate returns true when the session has just reached a terminal phase.
func (s *StateSystem) Evaluate(session *component.Session) bool {
	if session.Phase != component.PhasePlaying {
		return false
	}
	next, done := Outcome(session.Score, s.ecs.Batteries)
	if !done {
		return false
	}
	s.Transition(session, next)
	return true
}

// Transition меняет фазу и сообщает подписчикам.
func (s *StateSystem) Transition(session *component.Session, to component.Phase) {
	from := session.Phase
	if from == to {
		return
	}
	session.Phase = to
	log.Printf("session %s: %s -> %s (score %d, tick %d)", session.ID, from, to, session.Score, session.Tick)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseData{From: from, To: to}})
}
