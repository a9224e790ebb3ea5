// Package loop drives a Game on a fixed tick rate from a single goroutine.
package loop

import (
	"context"
	"errors"
	"log"
	"time"

	"missile-defense/internal/app"
	"missile-defense/internal/component"
	"missile-defense/internal/utils"
)

// Ticker — источник тиков. Реальный оборачивает time.Ticker, тесты подают тики вручную.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker ticks hz times per second.
func NewTimeTicker(hz int) Ticker {
	return timeTicker{t: time.NewTicker(time.Second / time.Duration(hz))}
}

// ErrStopped возвращают Fire и SetPaused, когда цикл уже завершился.
var ErrStopped = errors.New("loop: runner stopped")

// Команды, которые другие горутины ставят в очередь.
type fireCmd struct {
	target utils.Vec
	reply  chan bool
}

type pauseCmd struct {
	paused bool
}

// Runner — явная задача игрового цикла. Тики и команды обрабатываются в
// одной горутине, поэтому ввод никогда не пересекается с тиком.
type Runner struct {
	game   *app.Game
	ticker Ticker
	inbox  chan any
	done   chan struct{} // закрывается, когда Run вернулся

	// OnTick вызывается после каждого обработанного тика (в т.ч. на паузе).
	OnTick func(g *app.Game)
	// MaxTicks останавливает цикл после стольких тиков симуляции; 0 — без ограничения.
	MaxTicks uint64
}

func NewRunner(game *app.Game, ticker Ticker) *Runner {
	return &Runner{
		game:   game,
		ticker: ticker,
		inbox:  make(chan any, 64),
		done:   make(chan struct{}),
	}
}

// Run обрабатывает тики до отмены ctx или до выхода сессии из PLAYING.
// Возвращает ctx.Err() при отмене и nil, когда сессия закончилась.
// Тикер останавливается в любом случае. Run вызывается один раз.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)
	defer r.ticker.Stop()

	if r.game.Phase() != component.PhasePlaying {
		return nil
	}
	log.Printf("loop: running session %s", r.game.Session().ID)

	for {
		select {
		case <-ctx.Done():
			log.Printf("loop: cancelled at tick %d", r.game.Session().Tick)
			return ctx.Err()
		case cmd := <-r.inbox:
			r.handleCommand(cmd)
		case <-r.ticker.C():
			r.game.Tick()
			if r.OnTick != nil {
				r.OnTick(r.game)
			}
			s := r.game.Session()
			if s.Phase != component.PhasePlaying {
				log.Printf("loop: session %s ended with %s", s.ID, s.Phase)
				return nil
			}
			if r.MaxTicks > 0 && s.Tick >= r.MaxTicks {
				log.Printf("loop: tick limit %d reached", r.MaxTicks)
				return nil
			}
		}
	}
}

func (r *Runner) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case fireCmd:
		_, ok := r.game.Fire(c.target)
		c.reply <- ok
	case pauseCmd:
		r.game.SetPaused(c.paused)
	}
}

// Done закрывается, когда Run завершился.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Fire ставит выстрел в очередь и ждёт результата. Безопасен из любой горутины.
// После завершения цикла возвращает ErrStopped и не блокируется.
func (r *Runner) Fire(ctx context.Context, target utils.Vec) (bool, error) {
	select {
	case <-r.done:
		return false, ErrStopped
	default:
	}

	reply := make(chan bool, 1)
	select {
	case r.inbox <- fireCmd{target: target, reply: reply}:
	case <-r.done:
		return false, ErrStopped
	case <-ctx.Done():
		return false, ctx.Err()
	}
	select {
	case ok := <-reply:
		return ok, nil
	case <-r.done:
		// Команда могла успеть выполниться перед выходом
		select {
		case ok := <-reply:
			return ok, nil
		default:
			return false, ErrStopped
		}
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// SetPaused ставит паузу через очередь команд.
func (r *Runner) SetPaused(ctx context.Context, paused bool) error {
	select {
	case <-r.done:
		return ErrStopped
	default:
	}
	select {
	case <-r.done:
		return ErrStopped
	case r.inbox <- pauseCmd{paused: paused}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
