package component

import (
	"missile-defense/internal/types"
	"missile-defense/internal/utils"
)

// Bolt — визуальный эффект цепной молнии: ломаная от точки удара к цели.
type Bolt struct {
	ID     types.EntityID
	Points []utils.Vec
	Life   float64
}

func (b *Bolt) EntityID() types.EntityID { return b.ID }

// Position returns the bolt origin.
func (b *Bolt) Position() utils.Vec {
	if len(b.Points) == 0 {
		return utils.Vec{}
	}
	return b.Points[0]
}
