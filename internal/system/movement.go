// internal/system/movement.go
package system

import (
	"math"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/utils"
)

// MovementSystem двигает вражеские снаряды и обрабатывает их падение.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(session *component.Session) {
	var landed []*component.Enemy
	for _, e := range s.ecs.Enemies {
		if e.Advance(e.Speed) {
			landed = append(landed, e)
		}
	}
	if len(landed) == 0 {
		return
	}

	for _, e := range landed {
		SpawnExplosion(s.ecs, e.Target, config.ImpactRadius, component.SourceImpact, false)
		session.Stats.Impacts++
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyImpact, Data: e.Target})
		if ref, ok := s.resolveHit(e); ok {
			s.destroyStructure(session, ref)
		}
	}

	done := make(map[*component.Enemy]bool, len(landed))
	for _, e := range landed {
		done[e] = true
	}
	s.ecs.RemoveEnemies(func(e *component.Enemy) bool { return done[e] })
}

// resolveHit определяет, какое сооружение поражено. Ссылка на цель главнее;
// без неё ищется ближайшее по горизонтали живое сооружение, |dx| < ImpactTolerance.
func (s *MovementSystem) resolveHit(e *component.Enemy) (component.TargetRef, bool) {
	if e.TargetRef.Kind != component.TargetNone {
		return e.TargetRef, true
	}

	var best component.TargetRef
	bestDist := math.Inf(1)
	consider := func(ref component.TargetRef, pos utils.Vec) {
		if d := math.Abs(pos.X - e.Target.X); d < config.ImpactTolerance && d < bestDist {
			best, bestDist = ref, d
		}
	}
	for _, c := range s.ecs.Cities {
		if c.Active {
			consider(component.TargetRef{Kind: component.TargetCity, ID: c.ID}, c.Pos)
		}
	}
	for _, b := range s.ecs.Batteries {
		if b.Active {
			consider(component.TargetRef{Kind: component.TargetBattery, ID: b.ID}, b.Pos)
		}
	}
	return best, best.Kind != component.TargetNone
}

// destroyStructure гасит сооружение; повторное попадание в руины ничего не меняет.
func (s *MovementSystem) destroyStructure(session *component.Session, ref component.TargetRef) {
	switch ref.Kind {
	case component.TargetCity:
		c := s.ecs.City(ref.ID)
		if c == nil || !c.Active {
			return
		}
		c.Active = false
		session.Stats.CitiesLost++
	case component.TargetBattery:
		b := s.ecs.Battery(ref.ID)
		if b == nil || !b.Active {
			return
		}
		b.Active = false
		session.Stats.BatteryLost++
	default:
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.StructureDestroyed, Data: ref})
}
