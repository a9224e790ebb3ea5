// Package utilstest содержит детерминированные замены utils.Random для тестов.
package utilstest

import "missile-defense/internal/utils"

var _ utils.Random = (*ScriptedRandom)(nil)

// ScriptedRandom отдаёт заранее заданную последовательность значений.
// Когда последовательность заканчивается, возвращается Fallback.
type ScriptedRandom struct {
	Floats   []float64
	Ints     []int
	Fallback float64
}

func (s *ScriptedRandom) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.Fallback
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *ScriptedRandom) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}
