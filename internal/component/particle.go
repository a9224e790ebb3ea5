package component

import (
	"image/color"

	"missile-defense/internal/types"
	"missile-defense/internal/utils"
)

// Particle — чисто косметическая искра, в столкновениях не участвует.
type Particle struct {
	ID    types.EntityID
	Pos   utils.Vec
	Vel   utils.Vec
	Life  float64
	Color color.RGBA
	Size  float64
}

func (p *Particle) EntityID() types.EntityID { return p.ID }
func (p *Particle) Position() utils.Vec      { return p.Pos }
