package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pixelplayhq/tictactoe-rooms/internal/apperror"
	"github.com/pixelplayhq/tictactoe-rooms/internal/entity"
	"github.com/pixelplayhq/tictactoe-rooms/internal/pkg"
	"github.com/pixelplayhq/tictactoe-rooms/internal/usecase"
)

type coordinator interface {
	JoinRoom(session usecase.Session, name, roomCode string)
	PlayerMove(connID, roomCode string, board entity.Board)
	ChatMessage(roomCode, name, message string)
	RemoveConnection(connID string)
}

type Server struct {
	logger      *slog.Logger
	coordinator coordinator
	upgrader    websocket.Upgrader

	handlers map[string]func(c *client, payload json.RawMessage) error
}

func New(logger *slog.Logger, coord coordinator, allowedOrigins []string) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		coordinator: coord,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(allowedOrigins, r.Header.Get("Origin"))
			},
		},

		handlers: make(map[string]func(*client, json.RawMessage) error),
	}

	server.handlers["joinRoom"] = server.handleJoinRoom
	server.handlers["playerMove"] = server.handlePlayerMove
	server.handlers["chatMessage"] = server.handleChatMessage

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and starts the read/write pumps.
func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(pkg.GenerateConnectionID(), that.logger, conn)

	log.Info("WebSocket connection established", "connID", c.ID())

	go c.writePump()
	go c.readPump(that)
}

// dispatch - routes a decoded message to its event handler. Failures are
// logged and never surfaced to the peer.
func (that *Server) dispatch(c *client, message *Message) {
	log := that.logger.With("method", "dispatch", "event", message.Event, "connID", c.ID())

	handler, ok := that.handlers[message.Event]
	if !ok {
		log.Warn("dropping message", "error", apperror.ErrUnknownEvent)
		return
	}

	if err := handler(c, message.Payload); err != nil {
		log.Error("error processing message", "error", err)
	}
}

func (that *Server) dropClient(c *client) {
	that.coordinator.RemoveConnection(c.ID())
	close(c.done)

	that.logger.Info("connection closed", "connID", c.ID())
}

// originAllowed - reports whether the request origin is in the configured
// allow-list. Requests without an Origin header are accepted.
func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}

	for _, candidate := range allowed {
		if candidate == origin {
			return true
		}
	}

	return false
}
