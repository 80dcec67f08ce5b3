package realtime

import (
	"sync"
	"time"

	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeTimeout = 5 * time.Second

// Hub keeps the open admin dashboard sockets and broadcasts lifecycle events.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*wsConn
}

var _ interfaces.IEventPublisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{conns: make(map[string]*wsConn)}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Envelope is the frame written to every subscriber.
type Envelope struct {
	Event string         `json:"event"`
	Data  EstimateChange `json:"data"`
}

type EstimateChange struct {
	EstimateID string                  `json:"estimateId"`
	Status     entities.EstimateStatus `json:"status,omitempty"`
}

// Register adds a connection and returns its handle for Unregister.
func (h *Hub) Register(conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.conns[id] = &wsConn{conn: conn}
	n := len(h.conns)
	h.mu.Unlock()
	log.Debug().Str("conn_id", id).Int("subscribers", n).Msg("[realtime][hub] registered")
	return id
}

func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.conns[id]; ok {
		c.conn.Close()
		delete(h.conns, id)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Publish writes the event to every subscriber. Failed sockets are dropped.
func (h *Hub) Publish(event entities.LifecycleEvent) {
	msg := Envelope{Event: event.Name, Data: EstimateChange{EstimateID: event.EstimateID, Status: event.Status}}

	h.mu.RLock()
	targets := make(map[string]*wsConn, len(h.conns))
	for id, c := range h.conns {
		targets[id] = c
	}
	h.mu.RUnlock()

	for id, wc := range targets {
		wc.mu.Lock()
		_ = wc.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			log.Warn().Err(err).Str("conn_id", id).Str("event", event.Name).Msg("[realtime][hub] write failed; dropping subscriber")
			h.Unregister(id)
		}
	}
}
