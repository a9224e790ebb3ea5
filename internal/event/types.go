// internal/event/types.go
package event

const (
	ScoreChanged       EventType = "ScoreChanged"       // Data: ScoreData
	PhaseChanged       EventType = "PhaseChanged"       // Data: PhaseData
	EnemyDestroyed     EventType = "EnemyDestroyed"     // Data: KillData
	EnemyImpact        EventType = "EnemyImpact"        // Враг долетел до земли, Data: utils.Vec
	StructureDestroyed EventType = "StructureDestroyed" // Data: component.TargetRef
	InterceptorFired   EventType = "InterceptorFired"   // Data: *component.Interceptor
	SessionReset       EventType = "SessionReset"       // Data: session id
)
