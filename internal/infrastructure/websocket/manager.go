package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"ticketboom/pkg/logger"
)

// Client is one connected browser session.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte

	mu         sync.Mutex
	streamStop func()
}

// SetStream replaces the client's active per-ticket stream, stopping the
// previous one.
func (c *Client) SetStream(stop func()) {
	c.mu.Lock()
	prev := c.streamStop
	c.streamStop = stop
	c.mu.Unlock()

	if prev != nil {
		prev()
	}
}

func (c *Client) CloseStream() {
	c.SetStream(nil)
}

type directMessage struct {
	clientID string
	payload  []byte
}

// Manager tracks the active connections and fans broadcast payloads out to
// all of them. Every send to and close of a client's Send channel happens on
// the manager loop, so a client dropped mid-delivery can never turn into a
// send on a closed channel.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	direct     chan directMessage
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		direct:     make(chan directMessage),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Info("Websocket client registered: %s", client.ID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					close(client.Send)
				}
				m.mutex.Unlock()
				client.CloseStream()
				logger.Info("Websocket client unregistered: %s", client.ID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for id, client := range m.clients {
					if !m.deliver(id, client, message) {
						delete(m.clients, id)
					}
				}
				m.mutex.Unlock()

			case msg := <-m.direct:
				m.mutex.Lock()
				if client, ok := m.clients[msg.clientID]; ok {
					if !m.deliver(msg.clientID, client, msg.payload) {
						delete(m.clients, msg.clientID)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// deliver queues the message on a client, dropping the client when its queue
// is full. Only called from the manager loop. Returns false when the client
// was dropped and must be removed from the map.
func (m *Manager) deliver(id string, client *Client, message []byte) bool {
	select {
	case client.Send <- message:
		return true
	default:
		close(client.Send)
		client.CloseStream()
		logger.Warn("Dropping stalled websocket client %s", id)
		return false
	}
}

func (m *Manager) Broadcast(message []byte) {
	m.broadcast <- message
}

// SendToClient hands the message to the manager loop; delivery follows the
// same drop-when-stalled policy as Broadcast. A miss on the client id is a
// no-op.
func (m *Manager) SendToClient(id string, message []byte) {
	m.direct <- directMessage{clientID: id, payload: message}
}

// ReadPump reads messages from the connection, handing each to onMessage,
// until the peer goes away.
func (c *Client) ReadPump(m *Manager, onMessage func(client *Client, data []byte)) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("Websocket read error from %s: %v", c.ID, err)
			}
			break
		}

		if onMessage != nil {
			onMessage(c, message)
		}
	}
}

// WritePump drains the send queue into the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
