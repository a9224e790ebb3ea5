// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"missile-defense/internal/app"
	"missile-defense/internal/config"
	"missile-defense/internal/state"
	"missile-defense/internal/utils"
	"missile-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const startFromGame = false // true — начинать сразу с игры, false — с меню

type AppGame struct {
	stateMachine *state.StateMachine
	debug        bool
}

// Update вызывается ebiten раз в тик; один вызов — один шаг симуляции.
func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
	if a.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 10, config.ScreenHeight-20)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	debug := flag.Bool("debug", false, "show TPS/FPS overlay")
	flag.Parse()

	game := app.NewGame(app.WithRandom(utils.NewPRNGService(*seed)))
	renderer := render.NewRenderer(config.ScreenWidth, config.ScreenHeight)

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, game, renderer))
	} else {
		sm.SetState(state.NewMenuState(sm, game, renderer))
	}
	defer sm.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Missile Defense")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, debug: *debug}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
