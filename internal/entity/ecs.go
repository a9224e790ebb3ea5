// internal/entity/ecs.go
package entity

import (
	"missile-defense/internal/component"
	"missile-defense/internal/types"
)

// ECS хранит все сущности сессии. Хранилища упорядочены: порядок обхода
// важен для выбора батареи и для цепной молнии.
type ECS struct {
	NextID       types.EntityID
	Enemies      []*component.Enemy
	Interceptors []*component.Interceptor
	Explosions   []*component.Explosion
	Particles    []*component.Particle
	Bolts        []*component.Bolt
	Cities       []*component.City
	Batteries    []*component.Battery
}

func NewECS() *ECS {
	return &ECS{NextID: 1}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Reset очищает все хранилища и сбрасывает счётчик идентификаторов.
func (ecs *ECS) Reset() {
	ecs.NextID = 1
	ecs.Enemies = nil
	ecs.Interceptors = nil
	ecs.Explosions = nil
	ecs.Particles = nil
	ecs.Bolts = nil
	ecs.Cities = nil
	ecs.Batteries = nil
}

func (ecs *ECS) AddEnemy(e *component.Enemy) *component.Enemy {
	e.ID = ecs.NewEntity()
	ecs.Enemies = append(ecs.Enemies, e)
	return e
}

func (ecs *ECS) AddInterceptor(m *component.Interceptor) *component.Interceptor {
	m.ID = ecs.NewEntity()
	ecs.Interceptors = append(ecs.Interceptors, m)
	return m
}

func (ecs *ECS) AddExplosion(x *component.Explosion) *component.Explosion {
	x.ID = ecs.NewEntity()
	ecs.Explosions = append(ecs.Explosions, x)
	return x
}

func (ecs *ECS) AddParticle(p *component.Particle) *component.Particle {
	p.ID = ecs.NewEntity()
	ecs.Particles = append(ecs.Particles, p)
	return p
}

func (ecs *ECS) AddBolt(b *component.Bolt) *component.Bolt {
	b.ID = ecs.NewEntity()
	ecs.Bolts = append(ecs.Bolts, b)
	return b
}

func (ecs *ECS) AddCity(c *component.City) *component.City {
	c.ID = ecs.NewEntity()
	ecs.Cities = append(ecs.Cities, c)
	return c
}

func (ecs *ECS) AddBattery(b *component.Battery) *component.Battery {
	b.ID = ecs.NewEntity()
	ecs.Batteries = append(ecs.Batteries, b)
	return b
}

// RemoveEnemies удаляет врагов, для которых drop вернул true. Порядок остальных сохраняется.
func (ecs *ECS) RemoveEnemies(drop func(*component.Enemy) bool) int {
	var n int
	ecs.Enemies, n = filter(ecs.Enemies, drop)
	return n
}

func (ecs *ECS) RemoveInterceptors(drop func(*component.Interceptor) bool) int {
	var n int
	ecs.Interceptors, n = filter(ecs.Interceptors, drop)
	return n
}

func (ecs *ECS) RemoveExplosions(drop func(*component.Explosion) bool) int {
	var n int
	ecs.Explosions, n = filter(ecs.Explosions, drop)
	return n
}

func (ecs *ECS) RemoveParticles(drop func(*component.Particle) bool) int {
	var n int
	ecs.Particles, n = filter(ecs.Particles, drop)
	return n
}

func (ecs *ECS) RemoveBolts(drop func(*component.Bolt) bool) int {
	var n int
	ecs.Bolts, n = filter(ecs.Bolts, drop)
	return n
}

// RemoveEnemy удаляет одного врага по идентификатору.
func (ecs *ECS) RemoveEnemy(id types.EntityID) bool {
	return ecs.RemoveEnemies(func(e *component.Enemy) bool { return e.ID == id }) > 0
}

// City и Battery возвращают сооружение по идентификатору.
func (ecs *ECS) City(id types.EntityID) *component.City {
	for _, c := range ecs.Cities {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (ecs *ECS) Battery(id types.EntityID) *component.Battery {
	for _, b := range ecs.Batteries {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// ActiveBatteries counts batteries that are still standing.
func (ecs *ECS) ActiveBatteries() int {
	n := 0
	for _, b := range ecs.Batteries {
		if b.Active {
			n++
		}
	}
	return n
}

// filter оставляет элементы, для которых drop вернул false, переиспользуя массив.
func filter[T any](items []*T, drop func(*T) bool) ([]*T, int) {
	kept := items[:0]
	removed := 0
	for _, it := range items {
		if drop(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(items); i++ {
		items[i] = nil
	}
	return kept, removed
}
