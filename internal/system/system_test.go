package system

import (
	"testing"

	"missile-defense/internal/component"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/utils"
	"missile-defense/internal/utils/utilstest"
)

type testWorld struct {
	ecs     *entity.ECS
	events  *event.Dispatcher
	session *component.Session
	rng     *utilstest.ScriptedRandom
}

func newTestWorld() *testWorld {
	return &testWorld{
		ecs:     entity.NewECS(),
		events:  event.NewDispatcher(),
		session: &component.Session{ID: "test", Phase: component.PhasePlaying},
		rng:     &utilstest.ScriptedRandom{Fallback: 0.5},
	}
}

// addBatteries ставит левую, центральную и правую батареи с боезапасом 20/40/20.
func (w *testWorld) addBatteries() []*component.Battery {
	xs := []float64{60, 600, 1140}
	ammo := []int{20, 40, 20}
	var out []*component.Battery
	for i, x := range xs {
		out = append(out, w.ecs.AddBattery(&component.Battery{
			Pos:     utils.Vec{X: x, Y: 850},
			Active:  true,
			Ammo:    ammo[i],
			MaxAmmo: ammo[i],
		}))
	}
	return out
}

func (w *testWorld) addCities(xs ...float64) []*component.City {
	var out []*component.City
	for _, x := range xs {
		out = append(out, w.ecs.AddCity(&component.City{Pos: utils.Vec{X: x, Y: 860}, Active: true}))
	}
	return out
}

func (w *testWorld) addEnemyAt(pos utils.Vec) *component.Enemy {
	return w.ecs.AddEnemy(&component.Enemy{
		Path:  component.Path{Start: utils.Vec{X: pos.X, Y: -20}, Target: utils.Vec{X: pos.X, Y: 900}, Pos: pos},
		Speed: 1,
	})
}

func TestDestroyEnemiesAwardsScoreAndEvents(t *testing.T) {
	w := newTestWorld()
	a := w.addEnemyAt(utils.Vec{X: 10, Y: 10})
	w.addEnemyAt(utils.Vec{X: 20, Y: 20})
	c := w.addEnemyAt(utils.Vec{X: 30, Y: 30})

	var kills, scoreEvents int
	w.events.SubscribeFunc(event.EnemyDestroyed, func(event.Event) { kills++ })
	w.events.SubscribeFunc(event.ScoreChanged, func(event.Event) { scoreEvents++ })

	n := DestroyEnemies(w.ecs, w.session, w.events, []*component.Enemy{a, c, a}, component.KillExplosion)
	if n != 2 {
		t.Fatalf("destroyed %d, want 2", n)
	}
	if w.session.Score != 40 {
		t.Fatalf("score = %d, want 40", w.session.Score)
	}
	if kills != 2 || scoreEvents != 1 {
		t.Fatalf("events: kills=%d score=%d, want 2 and 1", kills, scoreEvents)
	}
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("enemies left = %d, want 1", len(w.ecs.Enemies))
	}

	// Повторное уничтожение уже удалённых врагов ничего не даёт
	if n := DestroyEnemies(w.ecs, w.session, w.events, []*component.Enemy{a}, component.KillExplosion); n != 0 {
		t.Fatalf("re-destroy returned %d, want 0", n)
	}
	if w.session.Score != 40 {
		t.Fatalf("score changed on re-destroy: %d", w.session.Score)
	}
}
