// internal/system/utils.go
package system

import (
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/types"
	"missile-defense/internal/utils"
)

// DestroyEnemies удаляет врагов из хранилища и начисляет очки за каждого.
// Враги, которых уже нет в хранилище, игнорируются. Возвращает число уничтоженных.
func DestroyEnemies(ecs *entity.ECS, session *component.Session, d *event.Dispatcher, victims []*component.Enemy, cause component.KillCause) int {
	if len(victims) == 0 {
		return 0
	}
	marked := make(map[types.EntityID]bool, len(victims))
	for _, v := range victims {
		marked[v.ID] = true
	}

	var killed []component.Enemy
	ecs.RemoveEnemies(func(e *component.Enemy) bool {
		if !marked[e.ID] {
			return false
		}
		killed = append(killed, *e)
		return true
	})

	for _, e := range killed {
		session.Stats.Kills[cause]++
		d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.KillData{Enemy: e, Cause: cause}})
	}
	AwardScore(session, d, len(killed)*config.PointsPerKill)
	return len(killed)
}

// AwardScore прибавляет очки и сообщает подписчикам.
func AwardScore(session *component.Session, d *event.Dispatcher, delta int) {
	if delta == 0 {
		return
	}
	session.Score += delta
	d.Dispatch(event.Event{Type: event.ScoreChanged, Data: event.ScoreData{Score: session.Score, Delta: delta}})
}

// SpawnExplosion добавляет взрыв с полной жизнью и нулевым радиусом.
func SpawnExplosion(ecs *entity.ECS, center utils.Vec, maxRadius float64, source component.ExplosionSource, rare bool) *component.Explosion {
	return ecs.AddExplosion(&component.Explosion{
		Center:    center,
		MaxRadius: maxRadius,
		Life:      1,
		Rare:      rare,
		Source:    source,
	})
}
