// component/movement.go
package component

import (
	"missile-defense/internal/types"
	"missile-defense/internal/utils"
)

// Positioned — общая форма всех сущностей: идентификатор и позиция.
// Поведение у каждого вида своё, поэтому общим остаётся только это.
type Positioned interface {
	EntityID() types.EntityID
	Position() utils.Vec
}

// Path — прямолинейная траектория start→target с нормализованным прогрессом.
type Path struct {
	Start    utils.Vec
	Target   utils.Vec
	Pos      utils.Vec
	Progress float64
}

// Advance сдвигает прогресс на speed/distance и пересчитывает позицию.
// Нулевая длина пути означает мгновенное прибытие. Возвращает true, когда прогресс достиг 1.
func (p *Path) Advance(speed float64) bool {
	dist := utils.Distance(p.Start, p.Target)
	if dist <= 0 {
		p.Progress = 1
	} else {
		p.Progress += speed / dist
	}
	if p.Progress >= 1 {
		p.Pos = p.Target
		return true
	}
	p.Pos = utils.LerpVec(p.Start, p.Target, p.Progress)
	return false
}

// Heading returns the angle of travel in radians.
func (p *Path) Heading() float64 {
	return utils.Angle(p.Start, p.Target)
}
