package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/GitBolt/shapefinder-sub000/internal/logger"
	"github.com/GitBolt/shapefinder-sub000/internal/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// Client owns one webview connection: a read pump feeding the session
// dispatcher and a write pump draining the send queue. Commands are handled
// to completion, in order, before the next frame is read.
type Client struct {
	Username string
	GameID   string
	Conn     *websocket.Conn
	Send     chan []byte

	session *Session
	failed  chan struct{}
}

func NewClient(username, gameID string, conn *websocket.Conn, svc *service.GameService) *Client {
	c := &Client{
		Username: username,
		GameID:   gameID,
		Conn:     conn,
		Send:     make(chan []byte, 64),
		failed:   make(chan struct{}),
	}
	c.session = NewSession(svc, username, gameID, c)
	return c
}

func (c *Client) Run() {
	go c.writePump()

	// explicit ready handshake so clients can wait before sending commands
	c.enqueue([]byte(`{"type":"ready"}`))

	c.readPump()
}

// SendEvent queues an outbound event frame.
func (c *Client) SendEvent(ev Event) {
	raw, err := json.Marshal(ev)
	if err != nil {
		logger.Error("event marshal failed", "type", ev.Type, "error", err)
		return
	}
	c.enqueue(raw)
}

// Fail sends a final error event and marks the connection for teardown.
// Used for protocol violations, which are fatal for the session.
func (c *Client) Fail(message string) {
	c.SendEvent(Event{Type: MsgError, Payload: ErrorPayload{Message: message}})
	select {
	case <-c.failed:
	default:
		close(c.failed)
	}
}

func (c *Client) enqueue(raw []byte) {
	select {
	case c.Send <- raw:
	case <-time.After(500 * time.Millisecond):
		logger.Warn("send queue full, dropping frame", "user", c.Username)
	}
}

func (c *Client) readPump() {
	defer func() {
		close(c.Send)
	}()

	c.Conn.SetReadLimit(8192)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.failed:
			return
		default:
		}

		_, msg, err := c.Conn.ReadMessage()
		if err != nil {
			logger.Debug("read closed", "user", c.Username, "error", err)
			return
		}
		c.session.HandleMessage(context.Background(), msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("write failed", "user", c.Username, "error", err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
