// internal/app/game.go
package app

import (
	"log"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/system"
	"missile-defense/internal/utils"

	"github.com/google/uuid"
)

// Game holds the session state and runs the simulation one tick at a time.
// It is not safe for concurrent use: input and ticks must come from one goroutine.
type Game struct {
	ECS                *entity.ECS
	Spawner            *system.Spawner
	Targeting          *system.Targeting
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	LightningSystem    *system.LightningSystem
	DroneSystem        *system.DroneSystem
	ExplosionSystem    *system.ExplosionSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	AutoGunner         *system.AutoGunner
	EventDispatcher    *event.Dispatcher
	Rng                utils.Random

	session component.Session
	width   float64
	height  float64
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithRandom подменяет источник случайности (для тестов и воспроизводимых прогонов).
func WithRandom(rng utils.Random) Option {
	return func(g *Game) { g.Rng = rng }
}

// WithScreen задаёт размер игрового поля.
func WithScreen(width, height float64) Option {
	return func(g *Game) { g.width, g.height = width, height }
}

// NewGame initializes a new game instance in the START phase.
func NewGame(opts ...Option) *Game {
	g := &Game{
		ECS:             entity.NewECS(),
		EventDispatcher: event.NewDispatcher(),
		width:           config.ScreenWidth,
		height:          config.ScreenHeight,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(0)
	}

	ecs, d, rng := g.ECS, g.EventDispatcher, g.Rng
	g.Spawner = system.NewSpawner(ecs, rng, g.width)
	g.Targeting = system.NewTargeting(ecs, d, rng)
	g.MovementSystem = system.NewMovementSystem(ecs, d)
	g.LightningSystem = system.NewLightningSystem(ecs, d, rng)
	g.DroneSystem = system.NewDroneSystem(ecs, rng)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, d, g.LightningSystem, g.DroneSystem, g.width, g.height)
	g.ExplosionSystem = system.NewExplosionSystem(ecs, d, rng)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.StateSystem = system.NewStateSystem(ecs, d)
	g.AutoGunner = system.NewAutoGunner(ecs)

	g.Reset()
	return g
}

// Reset возвращает все хранилища в исходное состояние и ставит фазу START.
func (g *Game) Reset() {
	g.ECS.Reset()
	g.placeDefenses()
	g.session = component.Session{
		ID:    uuid.NewString(),
		Phase: component.PhaseStart,
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionReset, Data: g.session.ID})
	g.EventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: event.ScoreData{Score: 0}})
}

// Start сбрасывает сессию и переводит её в PLAYING. Работает из любой фазы.
func (g *Game) Start() {
	g.Reset()
	log.Printf("session %s started", g.session.ID)
	g.StateSystem.Transition(&g.session, component.PhasePlaying)
}

// placeDefenses расставляет города и батареи по долям ширины экрана.
func (g *Game) placeDefenses() {
	for _, f := range config.CityFractions {
		g.ECS.AddCity(&component.City{
			Pos:    utils.Vec{X: g.width * f, Y: g.groundY()},
			Active: true,
		})
	}
	for i, f := range config.BatteryFractions {
		ammo := config.BatteryAmmo[i]
		g.ECS.AddBattery(&component.Battery{
			Pos:     utils.Vec{X: g.width * f, Y: g.groundY() - config.BatteryOffset},
			Active:  true,
			Ammo:    ammo,
			MaxAmmo: ammo,
		})
	}
}

func (g *Game) groundY() float64 {
	return g.height - (config.ScreenHeight - config.GroundY)
}

// Tick продвигает симуляцию на один кадр. Вне PLAYING и на паузе ничего не делает.
// Порядок шагов определяет, какие эффекты успевают сцепиться в пределах тика.
func (g *Game) Tick() {
	s := &g.session
	if !s.Running() {
		return
	}
	s.Tick++

	g.Spawner.Update(s)
	g.MovementSystem.Update(s)
	g.ProjectileSystem.Update(s)
	g.ExplosionSystem.Update(s)
	g.VisualEffectSystem.Update()
	g.StateSystem.Evaluate(s)
}

// Fire запускает перехватчик в точку в мировых координатах.
func (g *Game) Fire(target utils.Vec) (*component.Interceptor, bool) {
	return g.Targeting.Fire(&g.session, target)
}

// AutoFire стреляет по самой опасной цели, если она есть.
func (g *Game) AutoFire() bool {
	if !g.session.Running() {
		return false
	}
	target, ok := g.AutoGunner.Aim()
	if !ok {
		return false
	}
	_, fired := g.Fire(target)
	return fired
}

// SetPaused ставит или снимает паузу; действует только в PLAYING.
func (g *Game) SetPaused(paused bool) {
	if g.session.Phase != component.PhasePlaying {
		return
	}
	g.session.Paused = paused
}

// TogglePause переключает паузу и возвращает новое значение.
func (g *Game) TogglePause() bool {
	g.SetPaused(!g.session.Paused)
	return g.session.Paused
}

// Session returns a copy of the current session read model.
func (g *Game) Session() component.Session {
	return g.session
}

// MutableSession даёт прямой доступ к сессии для тестов и отладочных сценариев.
func (g *Game) MutableSession() *component.Session {
	return &g.session
}

func (g *Game) Phase() component.Phase { return g.session.Phase }
func (g *Game) Score() int             { return g.session.Score }

// Snapshot returns a deep copy of all stores for rendering.
func (g *Game) Snapshot() entity.Snapshot {
	return g.ECS.Snapshot(g.session)
}

// Events exposes the dispatcher so presenters can observe score and phase changes.
func (g *Game) Events() *event.Dispatcher {
	return g.EventDispatcher
}

// Size returns the playfield dimensions.
func (g *Game) Size() (float64, float64) {
	return g.width, g.height
}
