// internal/state/menu_state.go
package state

import (
	"missile-defense/internal/app"
	"missile-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState — стартовый экран (фаза START)
type MenuState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
}

func NewMenuState(sm *StateMachine, game *app.Game, renderer *render.Renderer) *MenuState {
	return &MenuState{sm: sm, game: game, renderer: renderer}
}

func (m *MenuState) Enter() {
	m.game.Reset()
}

func (m *MenuState) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}
	if confirmPressed() {
		m.sm.SetState(NewGameState(m.sm, m.game, m.renderer))
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.renderer.Draw(screen, m.game.Snapshot())
	m.renderer.DrawBanner(screen, "MISSILE DEFENSE", "click or press SPACE to start")
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
