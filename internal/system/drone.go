package system

import (
	"math"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/utils"
)

// DroneSystem управляет зависшими дронами: периодические сбросы и финальный залп.
type DroneSystem struct {
	ecs *entity.ECS
	rng utils.Random
}

func NewDroneSystem(ecs *entity.ECS, rng utils.Random) *DroneSystem {
	return &DroneSystem{ecs: ecs, rng: rng}
}

// Hover уменьшает таймер зависания на один тик. Каждые DroneDropInterval тиков
// дрон сбрасывает малый заряд в кольцо вокруг себя; на нуле даёт залп и расходуется.
func (s *DroneSystem) Hover(m *component.Interceptor) {
	m.HoverTimer--
	if m.HoverTimer > 0 {
		if m.HoverTimer%config.DroneDropInterval == 0 {
			at := utils.PointInAnnulus(s.rng, m.Pos, config.DroneDropInner, config.DroneDropOuter)
			SpawnExplosion(s.ecs, at, config.SmallExplosionRadius, component.SourceDrone, false)
		}
		return
	}
	s.burst(m)
	m.State = component.MissileSpent
}

func (s *DroneSystem) burst(m *component.Interceptor) {
	step := 2 * math.Pi / config.DroneBurstCount
	for i := 0; i < config.DroneBurstCount; i++ {
		at := utils.PointOnCircle(m.Pos, float64(i)*step, config.DroneBurstRing)
		SpawnExplosion(s.ecs, at, config.ExplosionRadius, component.SourceDrone, false)
	}
}
