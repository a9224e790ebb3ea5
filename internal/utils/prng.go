// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// Random — источник случайности, который используют системы симуляции.
// В тестах его подменяют детерминированной последовательностью.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform value in [lo, hi).
func Range(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// PointInAnnulus выбирает случайную точку в кольце [inner, outer) вокруг center.
func PointInAnnulus(r Random, center Vec, inner, outer float64) Vec {
	angle := r.Float64() * 2 * math.Pi
	dist := Range(r, inner, outer)
	return PointOnCircle(center, angle, dist)
}
