package system

import (
	"math"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/utils"
)

// ExplosionSystem старит взрывы, выпускает частицы и уничтожает врагов
// внутри текущего радиуса.
type ExplosionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             utils.Random
}

func NewExplosionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng utils.Random) *ExplosionSystem {
	return &ExplosionSystem{ecs: ecs, eventDispatcher: eventDispatcher, rng: rng}
}

func (s *ExplosionSystem) Update(session *component.Session) {
	for _, x := range s.ecs.Explosions {
		if !x.Emitted {
			s.emitParticles(x)
			x.Emitted = true
		}

		x.Life -= config.ExplosionDecay
		x.Radius = component.ExplosionRadiusAt(x.Life, x.MaxRadius)
		if x.Life <= 0 {
			continue
		}

		// Редкая бомба на пике очищает небо независимо от радиуса
		if x.InRareWindow(config.RareWindowLow, config.RareWindowHigh) {
			all := append([]*component.Enemy(nil), s.ecs.Enemies...)
			DestroyEnemies(s.ecs, session, s.eventDispatcher, all, component.KillRare)
		}

		var caught []*component.Enemy
		for _, e := range s.ecs.Enemies {
			if utils.Distance(e.Pos, x.Center) < x.Radius {
				caught = append(caught, e)
			}
		}
		DestroyEnemies(s.ecs, session, s.eventDispatcher, caught, component.KillExplosion)
	}

	s.ecs.RemoveExplosions(func(x *component.Explosion) bool { return x.Life <= 0 })
}

func (s *ExplosionSystem) emitParticles(x *component.Explosion) {
	c := config.ExplosionColor
	if x.Rare {
		c = config.RareExplosionTint
	}
	for i := 0; i < config.ParticlesPerBurst; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := utils.Range(s.rng, config.ParticleMinSpeed, config.ParticleMaxSpeed)
		s.ecs.AddParticle(&component.Particle{
			Pos:   x.Center,
			Vel:   utils.PointOnCircle(utils.Vec{}, angle, speed),
			Life:  1,
			Color: c,
			Size:  utils.Range(s.rng, config.ParticleMinSize, config.ParticleMaxSize),
		})
	}
}
