// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	TickRate     = 60 // тиков симуляции в секунду

	// Противник
	EnemySpeedBase     = 1.0 // единиц за тик
	EnemySpeedPerScore = 0.5 // прибавка скорости за каждые ScoreSpeedStep очков
	ScoreSpeedStep     = 1000.0
	EnemySpawnY        = -20.0 // над видимой областью
	SpawnChanceBase    = 0.015
	SpawnChanceDivisor = 5000.0
	ImpactTolerance    = 5.0

	// Перехватчики
	InterceptorSpeed = 12.0
	RareThreshold    = 0.10
	LightningThresh  = 0.25
	DroneThreshold   = 0.40

	// Взрывы
	ExplosionRadius      = 50.0
	ImpactRadius         = 30.0
	SmallExplosionRadius = 25.0
	ExplosionDecay       = 0.02
	RareWindowLow        = 0.4
	RareWindowHigh       = 0.6
	ParticlesPerBurst    = 15

	// Частицы
	ParticleFriction = 0.98
	ParticleDecay    = 0.02
	ParticleMinSpeed = 1.0
	ParticleMaxSpeed = 4.0
	ParticleMinSize  = 1.0
	ParticleMaxSize  = 3.0

	// Молния
	LightningRange    = 300.0
	LightningSegments = 8
	LightningJitter   = 12.0
	BoltDecay         = 0.05

	// Дрон
	DroneHoverTicks   = 180
	DroneDropInterval = 20
	DroneDropInner    = 50.0
	DroneDropOuter    = 200.0
	DroneBurstCount   = 12
	DroneBurstRing    = 60.0

	// Счёт
	PointsPerKill = 20
	WinScore      = 1000

	// Раскладка
	GroundY       = ScreenHeight - 40
	BatteryOffset = 10.0 // батареи стоят чуть выше городов
)

// CityFractions — доли ширины экрана, на которых стоят города
var CityFractions = []float64{0.15, 0.25, 0.35, 0.65, 0.75, 0.85}

// BatteryFractions и BatteryAmmo: левая, центральная, правая батареи
var (
	BatteryFractions = []float64{0.05, 0.5, 0.95}
	BatteryAmmo      = []int{20, 40, 20}
)

var (
	BackgroundColor   = color.RGBA{10, 10, 25, 255}
	GroundColor       = color.RGBA{60, 50, 30, 255}
	CityColor         = color.RGBA{70, 160, 230, 255}
	RuinColor         = color.RGBA{60, 60, 60, 255}
	BatteryColor      = color.RGBA{50, 205, 50, 255}
	EnemyColor        = color.RGBA{230, 60, 60, 255}
	EnemyTrailColor   = color.RGBA{230, 60, 60, 120}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	PauseColor        = color.RGBA{220, 60, 60, 220}
	PlayColor         = color.RGBA{70, 130, 180, 220}
	ExplosionColor    = color.RGBA{255, 200, 80, 255}
	RareExplosionTint = color.RGBA{255, 215, 0, 255}
	BoltColor         = color.RGBA{180, 220, 255, 255}
	StrokeWidth       = 2.0

	// AmmoColors indexed by component.AmmoType.
	AmmoColors = []color.RGBA{
		{240, 240, 240, 255}, // Normal
		{255, 215, 0, 255},   // Rare
		{120, 200, 255, 255}, // Lightning
		{180, 50, 230, 255},  // Drone
	}
)
