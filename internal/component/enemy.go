package component

import (
	"missile-defense/internal/types"
	"missile-defense/internal/utils"
)

// TargetKind — вид оборонительного сооружения, на которое нацелен враг.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCity
	TargetBattery
)

// TargetRef — ссылка на конкретное сооружение-цель.
type TargetRef struct {
	Kind TargetKind
	ID   types.EntityID
}

// Enemy представляет падающий вражеский снаряд.
type Enemy struct {
	ID        types.EntityID
	Path                // Прогресс монотонно растёт на Speed/dist каждый тик
	Speed     float64   // Базовая скорость плюс бонус за счёт
	TargetRef TargetRef // Пустая ссылка — совпадение ищется по координатам
}

func (e *Enemy) EntityID() types.EntityID { return e.ID }
func (e *Enemy) Position() utils.Vec      { return e.Pos }
