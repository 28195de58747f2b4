package sim

import "github.com/harbdog/raycaster-go/geom"

type EventType string

const (
	EventGameStart     EventType = "game_start"
	EventShoot         EventType = "shoot"
	EventEnemyHit      EventType = "enemy_hit"
	EventEnemyDeath    EventType = "enemy_death"
	EventPlayerHurt    EventType = "player_hurt"
	EventPowerUpPickup EventType = "powerup_pickup"
	EventWaveComplete  EventType = "wave_complete"
	EventWaveStart     EventType = "wave_start"
	EventGameOver      EventType = "game_over"
	EventVictory       EventType = "victory"
)

// AllEvents lists every event the simulation raises.
var AllEvents = []EventType{
	EventGameStart, EventShoot, EventEnemyHit, EventEnemyDeath, EventPlayerHurt,
	EventPowerUpPickup, EventWaveComplete, EventWaveStart, EventGameOver, EventVictory,
}

// Event carries where it happened and a type-specific value
// (damage dealt, health healed, wave number).
type Event struct {
	Type     EventType
	Position geom.Vector2
	Value    int
}

type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers the listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	for _, t := range AllEvents {
		d.Subscribe(t, listener)
	}
}

func (d *Dispatcher) Dispatch(e Event) {
	for _, listener := range d.listeners[e.Type] {
		listener.OnEvent(e)
	}
}
