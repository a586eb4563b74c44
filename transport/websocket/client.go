package websocket

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	sendBufferSize = 16
)

// client is one live connection. It implements usecase.Session: broadcasts
// are queued on the send channel and flushed by the write pump.
type client struct {
	id     string
	logger *slog.Logger
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
}

func newClient(id string, logger *slog.Logger, conn *websocket.Conn) *client {
	return &client{
		id:     id,
		logger: logger.With("connID", id),
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

func (that *client) ID() string {
	return that.id
}

// Send - queues an event for delivery. Never blocks; when the peer cannot
// keep up the event is dropped, delivery is fire-and-forget.
func (that *client) Send(event string, payload any) {
	log := that.logger.With("method", "Send", "event", event)

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal payload", "error", err)
		return
	}

	messageJSON, err := json.Marshal(Message{Event: event, Payload: payloadJSON})
	if err != nil {
		log.Error("failed to marshal message", "error", err)
		return
	}

	// The send channel is never closed; a broadcast can race the connection
	// teardown, so late events are dropped via done instead.
	select {
	case <-that.done:
	case that.send <- messageJSON:
	default:
		log.Warn("send buffer full, dropping event")
	}
}

// readPump - reads messages from the peer and hands them to the server for
// dispatch. Runs until the connection drops, then triggers cleanup.
func (that *client) readPump(server *Server) {
	log := that.logger.With("method", "readPump")

	defer func() {
		server.dropClient(that)
		that.conn.Close()
	}()

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("unexpected close", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		server.dispatch(that, &message)
	}
}

// writePump - flushes queued messages to the peer and keeps the connection
// alive with pings.
func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		that.conn.Close()
	}()

	for {
		select {
		case <-that.done:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case messageJSON := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, messageJSON); err != nil {
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
