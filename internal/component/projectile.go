// internal/component/projectile.go
package component

import (
	"missile-defense/internal/types"
	"missile-defense/internal/utils"
)

// AmmoType определяет конечный эффект перехватчика.
type AmmoType int

const (
	AmmoNormal AmmoType = iota
	AmmoRare
	AmmoLightning
	AmmoDrone
)

func (a AmmoType) String() string {
	switch a {
	case AmmoRare:
		return "rare"
	case AmmoLightning:
		return "lightning"
	case AmmoDrone:
		return "drone"
	default:
		return "normal"
	}
}

// MissileState — состояние перехватчика.
type MissileState int

const (
	MissileFlying   MissileState = iota // летит к точке цели
	MissileHovering                     // дрон завис над целью
	MissileSpent                        // эффект отработал, удалить
)

// Interceptor представляет ракету-перехватчик игрока.
type Interceptor struct {
	ID         types.EntityID
	Path
	Ammo       AmmoType
	State      MissileState
	HoverTimer int // только для дронов
	BatteryID  types.EntityID
}

func (m *Interceptor) EntityID() types.EntityID { return m.ID }
func (m *Interceptor) Position() utils.Vec      { return m.Pos }
