package component

import (
	"missile-defense/internal/types"
	"missile-defense/internal/utils"
)

// ExplosionSource — что породило взрыв.
type ExplosionSource int

const (
	SourceInterceptor ExplosionSource = iota
	SourceImpact
	SourceLightning
	SourceDrone
)

// Explosion — расширяющийся и затем сжимающийся огненный шар.
// Радиус целиком определяется Life через ExplosionRadiusAt.
type Explosion struct {
	ID        types.EntityID
	Center    utils.Vec
	Radius    float64
	MaxRadius float64
	Life      float64 // 1 → 0
	Rare      bool
	Source    ExplosionSource
	Emitted   bool // частицы уже выпущены
}

func (e *Explosion) EntityID() types.EntityID { return e.ID }
func (e *Explosion) Position() utils.Vec      { return e.Center }

// ExplosionRadiusAt — треугольный профиль: 0 при life=1, max при life=0.5, 0 при life=0.
func ExplosionRadiusAt(life, maxRadius float64) float64 {
	life = utils.Clamp01(life)
	if life > 0.5 {
		return maxRadius * (1 - life) * 2
	}
	return maxRadius * life * 2
}

// InRareWindow reports whether a rare explosion is at its peak, where it clears the sky.
func (e *Explosion) InRareWindow(low, high float64) bool {
	return e.Rare && e.Life > low && e.Life < high
}
