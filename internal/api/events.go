package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/parlorchat/go-parlor/internal/types"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 512
)

const (
	EventMessageCreated = "message_created"
	EventMessageUpdated = "message_updated"
	EventMessageDeleted = "message_deleted"
	EventUserJoined     = "user_joined"
	EventUserLeft       = "user_left"
	EventUserBanned     = "user_banned"
	EventRoomDeleted    = "room_deleted"
)

// Event is a room-scoped notification pushed to connected clients.
type Event struct {
	Type       string         `json:"type"`
	ChatroomId int            `json:"chatroom_id"`
	UserId     int            `json:"user_id,omitempty"`
	Message    *types.Message `json:"message,omitempty"`
}

type eventClient struct {
	conn *websocket.Conn
	hub  *EventHub
	log  *log.Logger
	send chan Event
}

// EventHub fans events out to every connected websocket client. Clients
// are push-only, the read side exists for pong and close handling.
type EventHub struct {
	log        *log.Logger
	clients    map[*eventClient]struct{}
	register   chan *eventClient
	deregister chan *eventClient
	events     chan Event
	done       chan struct{}
}

func NewEventHub(logger *log.Logger) *EventHub {
	h := &EventHub{
		log:        logger,
		clients:    make(map[*eventClient]struct{}),
		register:   make(chan *eventClient),
		deregister: make(chan *eventClient),
		events:     make(chan Event, 256),
		done:       make(chan struct{}),
	}

	go h.run()
	return h
}

func (h *EventHub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
		case c := <-h.deregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case event := <-h.events:
			for c := range h.clients {
				select {
				case c.send <- event:
				default:
					h.log.Println("client send buffer full, dropping connection")
					delete(h.clients, c)
					close(c.send)
				}
			}
		case <-h.done:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		}
	}
}

// Broadcast queues an event for delivery. Events are dropped when the hub
// is saturated rather than blocking request handlers.
func (h *EventHub) Broadcast(event Event) {
	select {
	case h.events <- event:
	case <-h.done:
	default:
		h.log.Println("event queue full, dropping event")
	}
}

func (h *EventHub) Close() {
	close(h.done)
}

func (c *eventClient) write() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}

			bytes, err := json.Marshal(event)
			if err != nil {
				c.log.Println("failed to serialize event:", err)
				continue
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, bytes); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *eventClient) read() {
	defer func() {
		// the hub may already be gone during shutdown
		select {
		case c.hub.deregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.log.Printf("ws: read: %v", err)
			}
			break
		}
	}
}

func (s *ParlorApp) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}

			for _, allowed := range s.allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}

			return false
		},
	}
}

func (s *ParlorApp) serveWs(w http.ResponseWriter, r *http.Request) {
	upgrader := s.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Println("ws upgrade:", err)
		return
	}

	c := &eventClient{
		conn: conn,
		hub:  s.events,
		log:  s.log,
		send: make(chan Event, 64),
	}

	select {
	case s.events.register <- c:
	case <-s.events.done:
		conn.Close()
		return
	}

	if s.stats != nil {
		s.stats.Incr(metricActiveClients)
		defer s.stats.Decr(metricActiveClients)
	}

	go c.write()
	c.read()
}
