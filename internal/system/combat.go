package system

import (
	"math"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/utils"
)

// AutoGunner — автоприцел для headless-прогонов и демо-режима.
// Он только выбирает точку; стреляет тот, кто его вызывает, через Targeting.
type AutoGunner struct {
	ecs *entity.ECS
}

func NewAutoGunner(ecs *entity.ECS) *AutoGunner {
	return &AutoGunner{ecs: ecs}
}

// Aim выбирает врага, который ближе всех к падению и ещё не перехватывается,
// и возвращает упреждённую точку встречи.
func (s *AutoGunner) Aim() (utils.Vec, bool) {
	target := s.findMostDangerousEnemy()
	if target == nil {
		return utils.Vec{}, false
	}
	origin := s.closestLiveBattery(target.Pos)
	if origin == nil {
		return utils.Vec{}, false
	}
	return predictEnemyPosition(target, origin.Pos, config.InterceptorSpeed), true
}

func (s *AutoGunner) findMostDangerousEnemy() *component.Enemy {
	var best *component.Enemy
	for _, e := range s.ecs.Enemies {
		if s.isCovered(e) {
			continue
		}
		if best == nil || e.Progress > best.Progress {
			best = e
		}
	}
	return best
}

// isCovered — уже летит перехватчик, чья точка подрыва накроет врага.
func (s *AutoGunner) isCovered(e *component.Enemy) bool {
	for _, m := range s.ecs.Interceptors {
		if m.State != component.MissileFlying {
			continue
		}
		if utils.Distance(m.Target, e.Target) < utils.Distance(e.Pos, e.Target) &&
			pointToLineDistance(m.Target, e.Start, e.Target) < config.ExplosionRadius/2 {
			return true
		}
	}
	return false
}

func (s *AutoGunner) closestLiveBattery(p utils.Vec) *component.Battery {
	var best *component.Battery
	bestDist := math.Inf(1)
	for _, b := range s.ecs.Batteries {
		if !b.CanFire() {
			continue
		}
		if d := math.Abs(b.Pos.X - p.X); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best
}

// predictEnemyPosition итеративно ищет точку, где перехватчик со скоростью
// projSpeed встретит врага, летящего по прямой.
func predictEnemyPosition(e *component.Enemy, from utils.Vec, projSpeed float64) utils.Vec {
	dist := utils.Distance(e.Start, e.Target)
	if dist <= 0 || e.Speed <= 0 {
		return e.Target
	}

	const maxIterations = 5
	ticksToHit := 0.0
	predicted := e.Pos
	for iter := 0; iter < maxIterations; iter++ {
		progress := math.Min(1, e.Progress+ticksToHit*e.Speed/dist)
		predicted = utils.LerpVec(e.Start, e.Target, progress)
		next := utils.Distance(from, predicted) / projSpeed
		if math.Abs(next-ticksToHit) < 0.5 {
			return predicted
		}
		ticksToHit = next
	}
	return predicted
}

func pointToLineDistance(p, a, b utils.Vec) float64 {
	ab := b.Sub(a)
	length := utils.Distance(a, b)
	if length == 0 {
		return utils.Distance(p, a)
	}
	ap := p.Sub(a)
	return math.Abs(ab.X*ap.Y-ab.Y*ap.X) / length
}
