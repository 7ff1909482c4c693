package component

import "github.com/milk9111/platformer/common"

// EventType defines the kind of gameplay event.
type EventType string

const (
	EventJump             EventType = "jump"
	EventCoinCollected    EventType = "coin_collected"
	EventPowerUpCollected EventType = "powerup_collected"
	EventEnemyStomped     EventType = "enemy_stomped"
	EventPlayerHit        EventType = "player_hit"
	EventLifeLost         EventType = "life_lost"
	EventLevelComplete    EventType = "level_complete"
	EventGameOver         EventType = "game_over"
)

// Event is emitted by the orchestrator while stepping the world.
type Event struct {
	Type  EventType
	Pos   common.Vector2
	Value int
	// Detail carries a short qualifier such as the power-up kind.
	Detail string
}

// EventHandler handles gameplay events.
type EventHandler func(evt Event)

// EventEmitter fans events out to its handlers in registration order.
type EventEmitter struct {
	Handlers []EventHandler
}

// Subscribe appends a handler.
func (e *EventEmitter) Subscribe(h EventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends an event to all handlers.
func (e *EventEmitter) Emit(evt Event) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
