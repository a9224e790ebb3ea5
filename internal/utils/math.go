// internal/utils/math.go
package utils

import "math"

// Vec — точка или вектор в мировых координатах
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v*k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Distance возвращает евклидово расстояние между двумя точками
func Distance(a, b Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpVec интерполирует точку на отрезке start→target; t=0 даёт start, t=1 даёт target.
func LerpVec(start, target Vec, t float64) Vec {
	return Vec{X: Lerp(start.X, target.X, t), Y: Lerp(start.Y, target.Y, t)}
}

// Angle возвращает угол направления движения from→to в радианах
func Angle(from, to Vec) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// PointOnCircle returns the point at the given angle and distance from center.
func PointOnCircle(center Vec, angle, radius float64) Vec {
	return Vec{X: center.X + math.Cos(angle)*radius, Y: center.Y + math.Sin(angle)*radius}
}

// Clamp01 ограничивает значение диапазоном [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
