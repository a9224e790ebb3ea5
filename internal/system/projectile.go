// internal/system/projectile.go
package system

import (
	"math"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
)

// ProjectileSystem ведёт перехватчики и запускает их конечный эффект.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	screenW         float64
	screenH         float64
	lightning       *LightningSystem
	drones          *DroneSystem
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, lightning *LightningSystem, drones *DroneSystem, screenW, screenH float64) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		screenW:         screenW,
		screenH:         screenH,
		lightning:       lightning,
		drones:          drones,
	}
}

func (s *ProjectileSystem) Update(session *component.Session) {
	for _, m := range s.ecs.Interceptors {
		switch m.State {
		case component.MissileFlying:
			if m.Advance(config.InterceptorSpeed) {
				s.detonate(session, m)
			}
		case component.MissileHovering:
			s.drones.Hover(m)
		}
	}
	s.ecs.RemoveInterceptors(func(m *component.Interceptor) bool {
		return m.State == component.MissileSpent
	})
}

func (s *ProjectileSystem) detonate(session *component.Session, m *component.Interceptor) {
	switch m.Ammo {
	case component.AmmoRare:
		// Взрыв на весь экран
		SpawnExplosion(s.ecs, m.Target, math.Hypot(s.screenW, s.screenH), component.SourceInterceptor, true)
		m.State = component.MissileSpent
	case component.AmmoLightning:
		s.lightning.Strike(session, m.Target)
		m.State = component.MissileSpent
	case component.AmmoDrone:
		m.State = component.MissileHovering
	default:
		SpawnExplosion(s.ecs, m.Target, config.ExplosionRadius, component.SourceInterceptor, false)
		m.State = component.MissileSpent
	}
}
