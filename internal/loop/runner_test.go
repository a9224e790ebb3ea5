package loop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"missile-defense/internal/app"
	"missile-defense/internal/component"
	"missile-defense/internal/utils"
	"missile-defense/internal/utils/utilstest"
)

type manualTicker struct {
	c       chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func newManualTicker() *manualTicker {
	return &manualTicker{c: make(chan time.Time), stopped: make(chan struct{})}
}

func (t *manualTicker) C() <-chan time.Time { return t.c }
func (t *manualTicker) Stop()               { t.once.Do(func() { close(t.stopped) }) }

func (t *manualTicker) tick(tb testing.TB) {
	tb.Helper()
	select {
	case t.c <- time.Now():
	case <-time.After(time.Second):
		tb.Fatalf("runner did not accept tick")
	}
}

func startedGame() *app.Game {
	g := app.NewGame(app.WithRandom(&utilstest.ScriptedRandom{Fallback: 0.99}))
	g.Start()
	return g
}

func runAsync(ctx context.Context, r *Runner) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(ctx) }()
	return errCh
}

func waitErr(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatalf("runner did not stop")
		return nil
	}
}

func TestRunnerCancel(t *testing.T) {
	g := startedGame()
	ticker := newManualTicker()
	r := NewRunner(g, ticker)
	ticks := make(chan uint64, 8)
	r.OnTick = func(g *app.Game) { ticks <- g.Session().Tick }

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, r)

	for i := 0; i < 3; i++ {
		ticker.tick(t)
	}
	for want := uint64(1); want <= 3; want++ {
		if got := <-ticks; got != want {
			t.Fatalf("tick = %d, want %d", got, want)
		}
	}

	cancel()
	if err := waitErr(t, errCh); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	select {
	case <-ticker.stopped:
	default:
		t.Fatalf("ticker not stopped")
	}
}

func TestRunnerStopsOnGameOver(t *testing.T) {
	g := startedGame()
	for _, b := range g.ECS.Batteries {
		b.Active = false
	}
	ticker := newManualTicker()
	errCh := runAsync(context.Background(), NewRunner(g, ticker))

	ticker.tick(t)
	if err := waitErr(t, errCh); err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Phase() != component.PhaseGameOver {
		t.Fatalf("phase = %s", g.Phase())
	}
}

func TestRunnerTickLimit(t *testing.T) {
	g := startedGame()
	ticker := newManualTicker()
	r := NewRunner(g, ticker)
	r.MaxTicks = 5
	errCh := runAsync(context.Background(), r)

	for i := 0; i < 5; i++ {
		ticker.tick(t)
	}
	if err := waitErr(t, errCh); err != nil {
		t.Fatalf("err = %v", err)
	}
	if g.Session().Tick != 5 {
		t.Fatalf("ticks = %d, want 5", g.Session().Tick)
	}
}

func TestRunnerReturnsWhenNotPlaying(t *testing.T) {
	g := app.NewGame(app.WithRandom(&utilstest.ScriptedRandom{Fallback: 0.99}))
	ticker := newManualTicker()
	if err := NewRunner(g, ticker).Run(context.Background()); err != nil {
		t.Fatalf("err = %v", err)
	}
	select {
	case <-ticker.stopped:
	default:
		t.Fatalf("ticker not stopped")
	}
}

func TestRunnerCommands(t *testing.T) {
	g := startedGame()
	ticker := newManualTicker()
	r := NewRunner(g, ticker)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := runAsync(ctx, r)

	ok, err := r.Fire(ctx, utils.Vec{X: 150, Y: 400})
	if err != nil || !ok {
		t.Fatalf("fire: ok=%v err=%v", ok, err)
	}

	if err := r.SetPaused(ctx, true); err != nil {
		t.Fatalf("pause: %v", err)
	}
	ok, err = r.Fire(ctx, utils.Vec{X: 150, Y: 400})
	if err != nil || ok {
		t.Fatalf("fire while paused: ok=%v err=%v", ok, err)
	}

	cancel()
	waitErr(t, errCh)
	if g.ECS.Batteries[0].Ammo != 19 || !g.Session().Paused {
		t.Fatalf("ammo=%d paused=%v", g.ECS.Batteries[0].Ammo, g.Session().Paused)
	}
}

func TestFireAfterCancel(t *testing.T) {
	r := NewRunner(startedGame(), newManualTicker())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Очередь не пуста, но ответа никто не даст
	if _, err := r.Fire(ctx, utils.Vec{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestCommandsAfterSessionEnded(t *testing.T) {
	g := startedGame()
	for _, b := range g.ECS.Batteries {
		b.Active = false
	}
	ticker := newManualTicker()
	r := NewRunner(g, ticker)
	errCh := runAsync(context.Background(), r)

	ticker.tick(t)
	if err := waitErr(t, errCh); err != nil {
		t.Fatalf("err = %v", err)
	}
	select {
	case <-r.Done():
	default:
		t.Fatalf("Done not closed after Run returned")
	}

	type result struct {
		ok       bool
		fireErr  error
		pauseErr error
	}
	resCh := make(chan result, 1)
	go func() {
		ok, fireErr := r.Fire(context.Background(), utils.Vec{X: 600, Y: 300})
		pauseErr := r.SetPaused(context.Background(), true)
		resCh <- result{ok, fireErr, pauseErr}
	}()

	select {
	case res := <-resCh:
		if res.ok || !errors.Is(res.fireErr, ErrStopped) {
			t.Fatalf("fire after %s: ok=%v err=%v", g.Phase(), res.ok, res.fireErr)
		}
		if !errors.Is(res.pauseErr, ErrStopped) {
			t.Fatalf("pause after %s: err=%v", g.Phase(), res.pauseErr)
		}
	case <-time.After(time.Second):
		t.Fatalf("commands blocked after Run returned (phase=%s)", g.Phase())
	}
}
