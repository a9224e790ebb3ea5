// internal/system/visual_effect.go
package system

import (
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
)

// VisualEffectSystem управляет чисто визуальными эффектами: частицами и молниями.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	for _, p := range s.ecs.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(config.ParticleFriction)
		p.Life -= config.ParticleDecay
	}
	s.ecs.RemoveParticles(func(p *component.Particle) bool { return p.Life <= 0 })

	for _, b := range s.ecs.Bolts {
		b.Life -= config.BoltDecay
	}
	s.ecs.RemoveBolts(func(b *component.Bolt) bool { return b.Life <= 0 })
}
