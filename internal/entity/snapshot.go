package entity

import (
	"missile-defense/internal/component"
	"missile-defense/internal/utils"
)

// Snapshot — копия всех хранилищ для отрисовки. Изменение снимка не влияет на симуляцию.
type Snapshot struct {
	Session      component.Session
	Enemies      []component.Enemy
	Interceptors []component.Interceptor
	Explosions   []component.Explosion
	Particles    []component.Particle
	Bolts        []component.Bolt
	Cities       []component.City
	Batteries    []component.Battery
}

// Snapshot copies every store together with the given session.
func (ecs *ECS) Snapshot(session component.Session) Snapshot {
	s := Snapshot{
		Session:      session,
		Enemies:      copyAll(ecs.Enemies),
		Interceptors: copyAll(ecs.Interceptors),
		Explosions:   copyAll(ecs.Explosions),
		Particles:    copyAll(ecs.Particles),
		Bolts:        copyAll(ecs.Bolts),
		Cities:       copyAll(ecs.Cities),
		Batteries:    copyAll(ecs.Batteries),
	}
	for i := range s.Bolts {
		s.Bolts[i].Points = append([]utils.Vec(nil), s.Bolts[i].Points...)
	}
	return s
}

func copyAll[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}
