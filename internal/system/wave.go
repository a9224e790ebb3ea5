// internal/system/wave.go
package system

import (
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/utils"
)

// Spawner решает, когда и откуда появляется новый вражеский снаряд и в кого он летит.
type Spawner struct {
	ecs         *entity.ECS
	rng         utils.Random
	screenWidth float64
}

func NewSpawner(ecs *entity.ECS, rng utils.Random, screenWidth float64) *Spawner {
	return &Spawner{ecs: ecs, rng: rng, screenWidth: screenWidth}
}

// SpawnChance — вероятность появления врага на тике. Сверху не ограничена.
func SpawnChance(score int) float64 {
	return config.SpawnChanceBase + float64(score)/config.SpawnChanceDivisor
}

// EnemySpeed растёт вместе со счётом игрока.
func EnemySpeed(score int) float64 {
	return config.EnemySpeedBase + (float64(score)/config.ScoreSpeedStep)*config.EnemySpeedPerScore
}

func (s *Spawner) Update(session *component.Session) {
	s.TrySpawn(session.Score, s.screenWidth)
}

// TrySpawn бросает кубик и, если повезло и есть живая цель, добавляет врага.
func (s *Spawner) TrySpawn(score int, screenWidth float64) (*component.Enemy, bool) {
	if s.rng.Float64() >= SpawnChance(score) {
		return nil, false
	}

	targets := s.liveTargets()
	if len(targets) == 0 {
		return nil, false
	}

	start := utils.Vec{X: s.rng.Float64() * screenWidth, Y: config.EnemySpawnY}
	target := targets[s.rng.Intn(len(targets))]
	pos := target.Position()

	enemy := &component.Enemy{
		Path:  component.Path{Start: start, Target: pos, Pos: start},
		Speed: EnemySpeed(score),
	}
	switch t := target.(type) {
	case *component.City:
		enemy.TargetRef = component.TargetRef{Kind: component.TargetCity, ID: t.ID}
	case *component.Battery:
		enemy.TargetRef = component.TargetRef{Kind: component.TargetBattery, ID: t.ID}
	}
	return s.ecs.AddEnemy(enemy), true
}

// liveTargets: сначала города, затем батареи, в порядке хранилищ.
func (s *Spawner) liveTargets() []component.Positioned {
	var targets []component.Positioned
	for _, c := range s.ecs.Cities {
		if c.Active {
			targets = append(targets, c)
		}
	}
	for _, b := range s.ecs.Batteries {
		if b.Active {
			targets = append(targets, b)
		}
	}
	return targets
}
