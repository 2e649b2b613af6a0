package spectate

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"

	"github.com/wvoliveira/pong/game"
)

var ErrHubClosed = errors.New("spectator hub closed")

const (
	writeWait  = 5 * time.Second
	sendBuffer = 8
)

// Frame é o que cada espectador recebe por tick.
type Frame struct {
	MatchID  string        `json:"match_id"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// Eventos que o loop do hub aceita
type EventType int

const (
	EventJoin EventType = iota
	EventLeave
	EventFrame
)

type hubEvent struct {
	Type   EventType
	Client *client
	Frame  []byte
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub repassa snapshots da partida para espectadores via websocket.
// Espectadores só leem: nada do que mandam chega na simulação.
type Hub struct {
	events chan hubEvent
	done   chan struct{}

	// closed impede que enqueue coloque algo na fila depois do último dreno.
	qmu    sync.Mutex
	closed bool

	mu      sync.RWMutex
	matchID string
	latest  *Frame
	encoded []byte

	clients atomic.Int32
}

func NewHub() *Hub {
	return &Hub{
		events:  make(chan hubEvent, 100),
		done:    make(chan struct{}),
		matchID: ulid.Make().String(),
	}
}

// NewMatch gera um ID novo; chamado pelo driver a cada StartGame.
func (h *Hub) NewMatch() string {
	id := ulid.Make().String()
	h.mu.Lock()
	h.matchID = id
	h.mu.Unlock()
	return id
}

func (h *Hub) MatchID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.matchID
}

func (h *Hub) Clients() int { return int(h.clients.Load()) }

// Latest devolve o último frame publicado.
func (h *Hub) Latest() (Frame, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.latest == nil {
		return Frame{}, false
	}
	return *h.latest, true
}

// Publish nunca bloqueia o loop do jogo: se a fila estiver cheia o frame é descartado.
func (h *Hub) Publish(s game.Snapshot) {
	frame := Frame{MatchID: h.MatchID(), Snapshot: s}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(frame); err != nil {
		slog.Error("error to encode frame", "error", err)
		return
	}
	msg := buf.Bytes()

	h.mu.Lock()
	h.latest = &frame
	h.encoded = msg
	h.mu.Unlock()

	select {
	case h.events <- hubEvent{Type: EventFrame, Frame: msg}:
	default:
	}
}

func (h *Hub) enqueue(evt hubEvent) error {
	h.qmu.Lock()
	defer h.qmu.Unlock()
	if h.closed {
		return ErrHubClosed
	}

	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}

	select {
	case h.events <- evt:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

// drain fecha a fila e libera quem entrou nela depois que o loop parou.
func (h *Hub) drain() {
	h.qmu.Lock()
	h.closed = true
	h.qmu.Unlock()

	for {
		select {
		case evt := <-h.events:
			if evt.Type == EventJoin {
				close(evt.Client.send)
			}
		default:
			return
		}
	}
}

// Run processa a fila até ctx acabar. Só esta goroutine mexe no mapa de clientes.
func (h *Hub) Run(ctx context.Context) {
	clients := make(map[*client]struct{})
	defer func() {
		close(h.done)
		h.drain()
		for c := range clients {
			close(c.send)
		}
		h.clients.Store(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case evt := <-h.events:
			switch evt.Type {
			case EventJoin:
				clients[evt.Client] = struct{}{}
				h.clients.Store(int32(len(clients)))
				slog.Info("spectator joined", "id", evt.Client.id, "total", len(clients))

				h.mu.RLock()
				last := h.encoded
				h.mu.RUnlock()
				if last != nil {
					evt.Client.send <- last
				}

			case EventLeave:
				if _, ok := clients[evt.Client]; ok {
					delete(clients, evt.Client)
					close(evt.Client.send)
					h.clients.Store(int32(len(clients)))
					slog.Info("spectator left", "id", evt.Client.id, "total", len(clients))
				}

			case EventFrame:
				for c := range clients {
					// Cliente lento perde frames em vez de travar o hub.
					select {
					case c.send <- evt.Frame:
					default:
					}
				}
			}
		}
	}
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			slog.Warn("error to set write deadline", "id", c.id, "error", err)
			return
		}
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			slog.Warn("error to write frame", "id", c.id, "error", err)
			return
		}
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		slog.Warn("error to set write deadline", "id", c.id, "error", err)
		return
	}
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "match closed")
	if err := c.conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
		slog.Debug("error to send close frame", "id", c.id, "error", err)
	}
}
