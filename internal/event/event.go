// internal/event/event.go
package event

import "missile-defense/internal/component"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// ScoreData — новое значение счёта и прирост.
type ScoreData struct {
	Score int
	Delta int
}

// PhaseData — переход фазы сессии.
type PhaseData struct {
	From component.Phase
	To   component.Phase
}

// KillData — уничтоженный враг и причина.
type KillData struct {
	Enemy component.Enemy
	Cause component.KillCause
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

type funcListener struct {
	fn func(Event)
}

func (f *funcListener) OnEvent(e Event) { f.fn(e) }

// Dispatcher — диспетчер событий. Синхронный: обработчики вызываются
// в той же горутине, что и Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeFunc подписывает функцию и возвращает функцию отписки.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) (unsubscribe func()) {
	l := &funcListener{fn: fn}
	d.Subscribe(eventType, l)
	return func() { d.Unsubscribe(eventType, l) }
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
