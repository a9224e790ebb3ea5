package system

import (
	"math"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/utils"
)

// Targeting выбирает батарею для выстрела и ставит перехватчик в очередь.
type Targeting struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             utils.Random
}

func NewTargeting(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng utils.Random) *Targeting {
	return &Targeting{ecs: ecs, eventDispatcher: eventDispatcher, rng: rng}
}

// RollAmmo переводит равномерный бросок в тип боеприпаса. Пороги накопительные.
func RollAmmo(roll float64) component.AmmoType {
	switch {
	case roll < config.RareThreshold:
		return component.AmmoRare
	case roll < config.LightningThresh:
		return component.AmmoLightning
	case roll < config.DroneThreshold:
		return component.AmmoDrone
	default:
		return component.AmmoNormal
	}
}

// SelectBattery returns the live battery with ammo closest to target horizontally.
// Ties go to the first battery in store order.
func (t *Targeting) SelectBattery(target utils.Vec) *component.Battery {
	var best *component.Battery
	bestDist := math.Inf(1)
	for _, b := range t.ecs.Batteries {
		if !b.CanFire() {
			continue
		}
		if d := math.Abs(b.Pos.X - target.X); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best
}

// Fire запускает перехватчик в точку target. Вне фазы игры, на паузе или без
// подходящей батареи ничего не делает и возвращает false.
func (t *Targeting) Fire(session *component.Session, target utils.Vec) (*component.Interceptor, bool) {
	if !session.Running() {
		return nil, false
	}
	battery := t.SelectBattery(target)
	if battery == nil {
		return nil, false
	}

	battery.Ammo--
	missile := &component.Interceptor{
		Path:      component.Path{Start: battery.Pos, Target: target, Pos: battery.Pos},
		Ammo:      RollAmmo(t.rng.Float64()),
		State:     component.MissileFlying,
		BatteryID: battery.ID,
	}
	if missile.Ammo == component.AmmoDrone {
		missile.HoverTimer = config.DroneHoverTicks
	}
	t.ecs.AddInterceptor(missile)

	session.Stats.ShotsFired++
	t.eventDispatcher.Dispatch(event.Event{Type: event.InterceptorFired, Data: missile})
	return missile, true
}
