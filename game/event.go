package game

import "fmt"

// Eventos que o Step emite para a camada de apresentação.
type EventType int

const (
	EventWallBounce EventType = iota
	EventPaddleBounce
	EventScored
	EventGameEnded
)

func (t EventType) String() string {
	switch t {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleBounce:
		return "paddle-bounce"
	case EventScored:
		return "scored"
	case EventGameEnded:
		return "game-ended"
	default:
		return fmt.Sprintf("event(%d)", int(t))
	}
}

// Side vale para PaddleBounce, Scored e GameEnded. Winner só em GameEnded.
type Event struct {
	Type   EventType
	Side   Side
	Winner string
}
