package system

import (
	"math"
	"testing"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/utils"
)

func newHoveringDrone(w *testWorld, timer int) *component.Interceptor {
	pos := utils.Vec{X: 600, Y: 300}
	return w.ecs.AddInterceptor(&component.Interceptor{
		Path:       component.Path{Start: pos, Target: pos, Pos: pos, Progress: 1},
		Ammo:       component.AmmoDrone,
		State:      component.MissileHovering,
		HoverTimer: timer,
	})
}

func TestDroneBurstOnLastHoverTick(t *testing.T) {
	w := newTestWorld()
	m := newHoveringDrone(w, 1)
	ds := NewDroneSystem(w.ecs, w.rng)
	ps := NewProjectileSystem(w.ecs, w.events, NewLightningSystem(w.ecs, w.events, w.rng), ds, 1200, 900)

	ps.Update(w.session)

	if len(w.ecs.Explosions) != config.DroneBurstCount {
		t.Fatalf("explosions = %d, want %d", len(w.ecs.Explosions), config.DroneBurstCount)
	}
	for _, x := range w.ecs.Explosions {
		d := utils.Distance(x.Center, m.Pos)
		if math.Abs(d-config.DroneBurstRing) > 1e-6 {
			t.Fatalf("burst explosion at distance %f, want %f", d, config.DroneBurstRing)
		}
		if x.MaxRadius != config.ExplosionRadius {
			t.Fatalf("burst radius = %f", x.MaxRadius)
		}
	}
	if len(w.ecs.Interceptors) != 0 {
		t.Fatalf("spent drone not removed")
	}
}

func TestDroneDropsInsideAnnulus(t *testing.T) {
	w := newTestWorld()
	m := newHoveringDrone(w, 21)
	w.rng.Floats = []float64{0.1, 0.9}

	NewDroneSystem(w.ecs, w.rng).Hover(m)

	if m.HoverTimer != 20 || m.State != component.MissileHovering {
		t.Fatalf("timer=%d state=%d", m.HoverTimer, m.State)
	}
	if len(w.ecs.Explosions) != 1 {
		t.Fatalf("explosions = %d, want 1 drop", len(w.ecs.Explosions))
	}
	x := w.ecs.Explosions[0]
	d := utils.Distance(x.Center, m.Pos)
	if d < config.DroneDropInner || d >= config.DroneDropOuter {
		t.Fatalf("drop at distance %f outside [%v, %v)", d, config.DroneDropInner, config.DroneDropOuter)
	}
	if x.MaxRadius != config.SmallExplosionRadius || x.Source != component.SourceDrone {
		t.Fatalf("drop explosion %+v", *x)
	}
}

func TestDroneFullHoverCycle(t *testing.T) {
	w := newTestWorld()
	m := newHoveringDrone(w, config.DroneHoverTicks)
	ds := NewDroneSystem(w.ecs, w.rng)

	ticks := 0
	for m.State == component.MissileHovering {
		ds.Hover(m)
		ticks++
	}
	if ticks != config.DroneHoverTicks {
		t.Fatalf("hovered %d ticks, want %d", ticks, config.DroneHoverTicks)
	}
	// 8 сбросов (160, 140, …, 20) плюс залп из 12
	if want := 8 + config.DroneBurstCount; len(w.ecs.Explosions) != want {
		t.Fatalf("explosions = %d, want %d", len(w.ecs.Explosions), want)
	}
}
