package state

import (
	"missile-defense/internal/app"
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/ui"
	"missile-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EndState — экран победы или поражения. Сессия заморожена до нового старта.
type EndState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
	panel    *ui.StatsPanel
}

func NewEndState(sm *StateMachine, game *app.Game, renderer *render.Renderer) *EndState {
	return &EndState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		panel:    ui.NewStatsPanel(renderer.FontFace(), config.ScreenWidth, config.ScreenHeight),
	}
}

func (e *EndState) Enter() {
	e.panel.Show()
}

func (e *EndState) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}
	e.panel.Update()

	again := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	for _, p := range pressedPoints() {
		if e.panel.AgainButton.Contains(p[0], p[1]) {
			again = true
		}
	}
	if again {
		e.sm.SetState(NewGameState(e.sm, e.game, e.renderer))
	}
	return nil
}

func (e *EndState) Draw(screen *ebiten.Image) {
	snap := e.game.Snapshot()
	e.renderer.Draw(screen, snap)
	title := "GAME OVER"
	if snap.Session.Phase == component.PhaseWin {
		title = "YOU WIN"
	}
	e.renderer.DrawBanner(screen, title, "press SPACE to play again")
	e.panel.Draw(screen, snap.Session)
}

func (e *EndState) Exit() {
	e.panel.Hide()
}
