// cmd/headless/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"missile-defense/internal/app"
	"missile-defense/internal/config"
	"missile-defense/internal/event"
	"missile-defense/internal/loop"
	"missile-defense/internal/utils"
)

func main() {
	envFile := flag.String("env", ".env", "optional env file with MD_* settings")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game := app.NewGame(app.WithRandom(utils.NewPRNGService(settings.Seed)))
	lost := 0
	game.Events().SubscribeFunc(event.StructureDestroyed, func(event.Event) { lost++ })
	game.Start()

	runner := loop.NewRunner(game, loop.NewTimeTicker(settings.TickHz))
	runner.MaxTicks = uint64(settings.MaxTicks)
	runner.OnTick = func(g *app.Game) {
		if g.Session().Tick%uint64(settings.BotInterval) == 0 {
			g.AutoFire()
		}
	}

	if err := runner.Run(ctx); err != nil {
		log.Printf("run stopped: %v", err)
	}

	s := game.Session()
	log.Printf("session %s: phase=%s score=%d ticks=%d shots=%d kills=%d impacts=%d structures_lost=%d",
		s.ID, s.Phase, s.Score, s.Tick, s.Stats.ShotsFired, s.Stats.TotalKills(), s.Stats.Impacts, lost)
}
