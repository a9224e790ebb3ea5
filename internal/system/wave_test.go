package system

import (
	"math"
	"testing"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/utils"
)

func TestSpawnChanceAndSpeedRamp(t *testing.T) {
	tests := []struct {
		score    int
		chance   float64
		enemySpd float64
	}{
		{0, 0.015, config.EnemySpeedBase},
		{500, 0.115, config.EnemySpeedBase + 0.25},
		{1000, 0.215, config.EnemySpeedBase + 0.5},
		{10000, 2.015, config.EnemySpeedBase + 5},
	}
	for _, tc := range tests {
		if got := SpawnChance(tc.score); math.Abs(got-tc.chance) > 1e-9 {
			t.Fatalf("SpawnChance(%d) = %f, want %f", tc.score, got, tc.chance)
		}
		if got := EnemySpeed(tc.score); math.Abs(got-tc.enemySpd) > 1e-9 {
			t.Fatalf("EnemySpeed(%d) = %f, want %f", tc.score, got, tc.enemySpd)
		}
	}
}

func TestTrySpawnRollFails(t *testing.T) {
	w := newTestWorld()
	w.addCities(100)
	w.rng.Floats = []float64{0.5}
	s := NewSpawner(w.ecs, w.rng, 1200)
	if e, ok := s.TrySpawn(0, 1200); ok || e != nil {
		t.Fatalf("spawned with roll above chance")
	}
	if len(w.ecs.Enemies) != 0 {
		t.Fatalf("enemy store not empty")
	}
}

func TestTrySpawnWithoutTargetsIsSuppressed(t *testing.T) {
	w := newTestWorld()
	cities := w.addCities(100)
	cities[0].Active = false
	w.rng.Floats = []float64{0}
	s := NewSpawner(w.ecs, w.rng, 1200)
	if _, ok := s.TrySpawn(0, 1200); ok {
		t.Fatalf("spawned with no live target")
	}
}

func TestTrySpawnAimsAtLiveStructure(t *testing.T) {
	w := newTestWorld()
	cities := w.addCities(100, 200)
	cities[0].Active = false
	batteries := w.addBatteries()
	batteries[0].Active = false

	// Живые цели по порядку: город 200, батарея 600, батарея 1140
	w.rng.Floats = []float64{0.001, 0.25}
	w.rng.Ints = []int{1}
	s := NewSpawner(w.ecs, w.rng, 1200)

	e, ok := s.TrySpawn(500, 1200)
	if !ok {
		t.Fatalf("expected spawn")
	}
	if e.Start != (utils.Vec{X: 300, Y: config.EnemySpawnY}) {
		t.Fatalf("start = %v, want {300 %v}", e.Start, config.EnemySpawnY)
	}
	if e.Target != batteries[1].Pos {
		t.Fatalf("target = %v, want center battery %v", e.Target, batteries[1].Pos)
	}
	if e.TargetRef != (component.TargetRef{Kind: component.TargetBattery, ID: batteries[1].ID}) {
		t.Fatalf("target ref = %+v", e.TargetRef)
	}
	if e.Speed != EnemySpeed(500) || e.Progress != 0 {
		t.Fatalf("speed=%f progress=%f", e.Speed, e.Progress)
	}
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("enemy not stored")
	}
}
