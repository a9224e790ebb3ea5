// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState держит сессию на паузе поверх GameState. Тик продолжает
// вызываться, но симуляция на паузе ничего не делает.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.game.SetPaused(true)
}

func (s *PauseState) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}
	s.previousState.game.Tick()

	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	for _, p := range pressedPoints() {
		if s.previousState.pauseButton.Contains(p[0], p[1]) {
			unpause = true
		}
	}
	if unpause {
		// Возвращаемся без повторного Enter, чтобы не начать новую сессию
		s.previousState.game.SetPaused(false)
		s.stateMachine.current = s.previousState
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.previousState.renderer.DrawBanner(screen, "PAUSED", "press P to resume")
}

func (s *PauseState) Exit() {}
