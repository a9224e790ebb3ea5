// component/tower.go
package component

import (
	"missile-defense/internal/types"
	"missile-defense/internal/utils"
)

// City — защищаемый город. Active сбрасывается ровно один раз и навсегда.
type City struct {
	ID     types.EntityID
	Pos    utils.Vec
	Active bool
}

func (c *City) EntityID() types.EntityID { return c.ID }
func (c *City) Position() utils.Vec      { return c.Pos }

// Battery — пусковая установка с ограниченным боезапасом.
type Battery struct {
	ID      types.EntityID
	Pos     utils.Vec
	Active  bool
	Ammo    int
	MaxAmmo int
}

func (b *Battery) EntityID() types.EntityID { return b.ID }
func (b *Battery) Position() utils.Vec      { return b.Pos }

// CanFire reports whether the battery is alive and has ammo left.
func (b *Battery) CanFire() bool {
	return b.Active && b.Ammo > 0
}
