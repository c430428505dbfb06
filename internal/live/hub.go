package live

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// EventChange is the only event type published today.
const EventChange = "change"

// Event announces that a mutating request succeeded.
type Event struct {
	Type   string    `json:"type"`
	Method string    `json:"method"`
	Path   string    `json:"path"`
	At     time.Time `json:"at"`
}

// Publisher accepts events for fan-out.
type Publisher interface {
	Publish(Event)
}

// Hub maintains the set of active clients and broadcasts events to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	count      atomic.Int64
	log        *zap.Logger
}

var _ Publisher = (*Hub)(nil)

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Register adds a client to the hub. It returns false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish queues the event for every connected client. Events are dropped
// when the queue is full or the hub has stopped.
func (h *Hub) Publish(event Event) {
	if event.Type == "" {
		event.Type = EventChange
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	message, err := json.Marshal(event)
	if err != nil {
		h.log.Error("marshal live event", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- message:
	case <-h.done:
	default:
		h.log.Warn("live event queue full, dropping event", zap.String("path", event.Path))
	}
}

// ClientCount is the number of registered clients.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Run is the hub's main loop. It returns when ctx is done, closing every client.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for client := range h.clients {
			h.remove(client)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.clients[client] = true
			h.count.Add(1)
			h.log.Debug("live client connected", zap.String("remote", client.remote))
		case client := <-h.unregister:
			if h.clients[client] {
				h.remove(client)
				h.log.Debug("live client disconnected", zap.String("remote", client.remote))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.log.Warn("live client send buffer full, removing client", zap.String("remote", client.remote))
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.count.Add(-1)
}
