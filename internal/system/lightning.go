package system

import (
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/utils"
)

// LightningSystem обрабатывает удар цепной молнии.
type LightningSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             utils.Random
}

func NewLightningSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng utils.Random) *LightningSystem {
	return &LightningSystem{ecs: ecs, eventDispatcher: eventDispatcher, rng: rng}
}

// ChainTargets возвращает каждого второго врага (индексы 0, 2, 4…) из тех,
// что ближе LightningRange к точке удара.
func ChainTargets(enemies []*component.Enemy, impact utils.Vec) []*component.Enemy {
	var inRange []*component.Enemy
	for _, e := range enemies {
		if utils.Distance(e.Pos, impact) < config.LightningRange {
			inRange = append(inRange, e)
		}
	}
	var chain []*component.Enemy
	for i := 0; i < len(inRange); i += 2 {
		chain = append(chain, inRange[i])
	}
	return chain
}

// Strike бьёт молнией из точки impact. Цели уничтожаются сразу, на их месте
// появляются малые взрывы; в самой точке удара — обычный взрыв.
func (s *LightningSystem) Strike(session *component.Session, impact utils.Vec) int {
	chain := ChainTargets(s.ecs.Enemies, impact)
	for _, e := range chain {
		s.ecs.AddBolt(&component.Bolt{Points: s.jaggedPath(impact, e.Pos), Life: 1})
		SpawnExplosion(s.ecs, e.Pos, config.SmallExplosionRadius, component.SourceLightning, false)
	}
	killed := DestroyEnemies(s.ecs, session, s.eventDispatcher, chain, component.KillLightning)
	SpawnExplosion(s.ecs, impact, config.ExplosionRadius, component.SourceInterceptor, false)
	return killed
}

// jaggedPath строит ломаную from→to со случайным смещением поперёк направления.
// Концы ломаной совпадают с from и to.
func (s *LightningSystem) jaggedPath(from, to utils.Vec) []utils.Vec {
	n := config.LightningSegments
	dir := to.Sub(from)
	length := utils.Distance(from, to)
	var normal utils.Vec
	if length > 0 {
		normal = utils.Vec{X: -dir.Y / length, Y: dir.X / length}
	}

	points := make([]utils.Vec, 0, n+1)
	points = append(points, from)
	for i := 1; i < n; i++ {
		base := utils.LerpVec(from, to, float64(i)/float64(n))
		offset := utils.Range(s.rng, -config.LightningJitter, config.LightningJitter)
		points = append(points, base.Add(normal.Scale(offset)))
	}
	return append(points, to)
}
