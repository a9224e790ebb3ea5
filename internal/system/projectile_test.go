package system

import (
	"math"
	"testing"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/utils"
)

func newFlyingInterceptor(w *testWorld, ammo component.AmmoType) *component.Interceptor {
	start := utils.Vec{X: 600, Y: 324}
	return w.ecs.AddInterceptor(&component.Interceptor{
		Path:       component.Path{Start: start, Target: utils.Vec{X: 600, Y: 300}, Pos: start},
		Ammo:       ammo,
		State:      component.MissileFlying,
		HoverTimer: config.DroneHoverTicks,
	})
}

func newProjectileSystem(w *testWorld) *ProjectileSystem {
	return NewProjectileSystem(w.ecs, w.events,
		NewLightningSystem(w.ecs, w.events, w.rng),
		NewDroneSystem(w.ecs, w.rng),
		config.ScreenWidth, config.ScreenHeight)
}

func TestInterceptorDetonation(t *testing.T) {
	tests := []struct {
		ammo        component.AmmoType
		explosions  int
		maxRadius   float64
		rare        bool
		keepsFlying bool
	}{
		{component.AmmoNormal, 1, config.ExplosionRadius, false, false},
		{component.AmmoRare, 1, math.Hypot(config.ScreenWidth, config.ScreenHeight), true, false},
		{component.AmmoLightning, 1, config.ExplosionRadius, false, false},
		{component.AmmoDrone, 0, 0, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.ammo.String(), func(t *testing.T) {
			w := newTestWorld()
			m := newFlyingInterceptor(w, tc.ammo)
			ps := newProjectileSystem(w)

			ps.Update(w.session)
			if m.Progress != 0.5 || len(w.ecs.Explosions) != 0 {
				t.Fatalf("after one tick: progress %f, explosions %d", m.Progress, len(w.ecs.Explosions))
			}
			ps.Update(w.session)

			if len(w.ecs.Explosions) != tc.explosions {
				t.Fatalf("explosions = %d, want %d", len(w.ecs.Explosions), tc.explosions)
			}
			if tc.explosions > 0 {
				x := w.ecs.Explosions[0]
				if x.Center != m.Target || math.Abs(x.MaxRadius-tc.maxRadius) > 1e-9 || x.Rare != tc.rare {
					t.Fatalf("explosion %+v", *x)
				}
			}
			if tc.keepsFlying {
				if m.State != component.MissileHovering || len(w.ecs.Interceptors) != 1 {
					t.Fatalf("drone should hover in place")
				}
			} else if len(w.ecs.Interceptors) != 0 {
				t.Fatalf("spent interceptor kept")
			}
		})
	}
}

func TestDroneStartsHoveringOnNextTick(t *testing.T) {
	w := newTestWorld()
	m := newFlyingInterceptor(w, component.AmmoDrone)
	ps := newProjectileSystem(w)

	ps.Update(w.session)
	ps.Update(w.session)
	if m.HoverTimer != config.DroneHoverTicks {
		t.Fatalf("timer ticked on arrival: %d", m.HoverTimer)
	}
	ps.Update(w.session)
	if m.HoverTimer != config.DroneHoverTicks-1 {
		t.Fatalf("timer = %d, want %d", m.HoverTimer, config.DroneHoverTicks-1)
	}
}
