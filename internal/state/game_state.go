// internal/state/game_state.go
package state

import (
	"image/color"

	"missile-defense/internal/app"
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/event"
	"missile-defense/internal/ui"
	"missile-defense/internal/utils"
	"missile-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры (фаза PLAYING)
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	renderer    *render.Renderer
	indicator   *ui.StateIndicator
	pauseButton *ui.PauseButton
	ammoGauge   *ui.AmmoGauge
	score       *ui.ScoreIndicator
}

func NewGameState(sm *StateMachine, game *app.Game, renderer *render.Renderer) *GameState {
	return &GameState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-30),
			30,
			10,
		),
		pauseButton: ui.NewPauseButton(float32(config.ScreenWidth-70), 30, 10, config.PauseColor, config.PlayColor),
		ammoGauge:   ui.NewAmmoGauge(40, 4, config.BatteryColor, config.RuinColor),
		score:       ui.NewScoreIndicator(config.ScreenWidth/2, 24, renderer.FontFace()),
	}
}

// Enter начинает новую сессию. Индикатор подписывается до старта, чтобы
// получить обнуление счёта.
func (g *GameState) Enter() {
	g.game.Events().Subscribe(event.ScoreChanged, g.score)
	g.game.Start()
}

func (g *GameState) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	for _, p := range pressedPoints() {
		if g.pauseButton.Contains(p[0], p[1]) {
			g.sm.SetState(NewPauseState(g.sm, g))
			return nil
		}
		g.game.Fire(utils.Vec{X: float64(p[0]), Y: float64(p[1])})
	}

	g.game.Tick()

	if phase := g.game.Phase(); phase.Terminal() {
		g.game.Events().Unsubscribe(event.ScoreChanged, g.score)
		g.sm.SetState(NewEndState(g.sm, g.game, g.renderer))
	}
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)
	for _, b := range snap.Batteries {
		if b.Active {
			g.ammoGauge.Draw(screen, float32(b.Pos.X), float32(b.Pos.Y)+28, b.Ammo, b.MaxAmmo)
		}
	}
	g.pauseButton.SetPaused(snap.Session.Paused)
	g.pauseButton.Draw(screen)
	g.indicator.Draw(screen, phaseColor(snap.Session))
	g.score.Draw(screen)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

func phaseColor(s component.Session) color.RGBA {
	switch {
	case s.Paused:
		return config.PauseColor
	case s.Phase == component.PhasePlaying:
		return config.BatteryColor
	default:
		return config.PlayColor
	}
}
