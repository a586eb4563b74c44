package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixelplayhq/tictactoe-rooms/internal/entity"
	"github.com/pixelplayhq/tictactoe-rooms/internal/tictactoe"
)

const (
	commandBufferSize = 256
	archiveTimeout    = 5 * time.Second

	playersPerGame = 2
)

// Session is a live connection handle the coordinator can broadcast to.
// Send must not block; delivery is fire-and-forget.
type Session interface {
	ID() string
	Send(event string, payload any)
}

type gameArchive interface {
	Save(ctx context.Context, record *entity.GameRecord) error
}

type command interface{ isCommand() }

type joinCmd struct {
	session  Session
	name     string
	roomCode string
}

type moveCmd struct {
	connID   string
	roomCode string
	board    entity.Board
}

type chatCmd struct {
	roomCode string
	name     string
	message  string
}

type leaveCmd struct {
	connID string
}

func (joinCmd) isCommand()  {}
func (moveCmd) isCommand()  {}
func (chatCmd) isCommand()  {}
func (leaveCmd) isCommand() {}

// RoomCoordinator owns the registry of active rooms and the per-room game
// state machine. Every mutation runs on the single Run goroutine, so rooms
// never see interleaved transitions and need no locks.
type RoomCoordinator struct {
	logger  *slog.Logger
	archive gameArchive

	rooms    map[string]*entity.Room
	sessions map[string]Session

	commands chan command
}

func NewRoomCoordinator(logger *slog.Logger, archive gameArchive) *RoomCoordinator {
	return &RoomCoordinator{
		logger:  logger.With("component", "coordinator"),
		archive: archive,

		rooms:    make(map[string]*entity.Room),
		sessions: make(map[string]Session),

		commands: make(chan command, commandBufferSize),
	}
}

// Run - drains the command queue until the context is canceled. Exactly one
// Run loop may be active per coordinator.
func (that *RoomCoordinator) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-that.commands:
			that.dispatch(cmd)
		}
	}
}

// JoinRoom - appends the connection to the room, creating the room lazily
// on a previously-unseen code.
func (that *RoomCoordinator) JoinRoom(session Session, name, roomCode string) {
	that.enqueue(joinCmd{session: session, name: name, roomCode: roomCode})
}

// PlayerMove - replaces the room board wholesale and advances the turn.
func (that *RoomCoordinator) PlayerMove(connID, roomCode string, board entity.Board) {
	that.enqueue(moveCmd{connID: connID, roomCode: roomCode, board: board})
}

// ChatMessage - relays a chat message to everyone in the room.
func (that *RoomCoordinator) ChatMessage(roomCode, name, message string) {
	that.enqueue(chatCmd{roomCode: roomCode, name: name, message: message})
}

// RemoveConnection - drops the connection from every room it belongs to and
// deletes rooms it leaves empty. Remaining players are not notified.
func (that *RoomCoordinator) RemoveConnection(connID string) {
	that.enqueue(leaveCmd{connID: connID})
}

// enqueue - hands a command to the Run loop. Blocks when the queue is
// full; the Run loop is always draining, so a burst backs pressure up to
// the transport instead of losing joins or disconnect cleanup.
func (that *RoomCoordinator) enqueue(cmd command) {
	that.commands <- cmd
}

func (that *RoomCoordinator) dispatch(cmd command) {
	switch typed := cmd.(type) {
	case joinCmd:
		that.handleJoin(typed)
	case moveCmd:
		that.handleMove(typed)
	case chatCmd:
		that.handleChat(typed)
	case leaveCmd:
		that.handleLeave(typed)
	}
}

func (that *RoomCoordinator) handleJoin(cmd joinCmd) {
	log := that.logger.With("method", "handleJoin", "roomCode", cmd.roomCode)

	that.sessions[cmd.session.ID()] = cmd.session

	player := &entity.Player{Name: cmd.name, ID: cmd.session.ID()}

	room, ok := that.rooms[cmd.roomCode]
	if !ok {
		room = entity.NewRoom(cmd.roomCode, player)
		that.rooms[cmd.roomCode] = room

		log.Info("room created", "player", player.Name)
		return
	}

	room.AddPlayer(player)
	log.Info("player joined room", "player", player.Name, "players", len(room.Players))

	// Exactly the join that makes it two players starts the game; later
	// joiners slip in silently, as the original service allowed.
	if len(room.Players) == playersPerGame {
		room.GameStarted = true

		that.broadcast(room, EventGameStart, room.CurrentPlayer())
	}
}

func (that *RoomCoordinator) handleMove(cmd moveCmd) {
	log := that.logger.With("method", "handleMove", "roomCode", cmd.roomCode)

	room, ok := that.rooms[cmd.roomCode]
	if !ok || room.IsEmpty() {
		// stale or forged event, nothing to do
		return
	}

	// The submitted board is trusted wholesale. The coordinator arbitrates
	// turn advancement and terminal detection, not move legality.
	room.Board = cmd.board
	room.AdvanceTurn()

	update := BoardUpdate{Board: room.Board}
	if next := room.CurrentPlayer(); next != nil {
		update.NextPlayer = &next.Name
	}

	that.broadcast(room, EventUpdateBoard, update)

	var winner *entity.Player
	if mark := tictactoe.WinningMark(room.Board); mark != entity.EmptyCell {
		winner = tictactoe.ResolveWinner(mark, room.Players)
	}

	switch {
	case winner != nil:
		that.finishGame(room, fmt.Sprintf("%s gana!", winner.Name))
	case room.Board.IsFull():
		that.finishGame(room, DrawMessage)
	}

	log.Debug("move applied", "connID", cmd.connID)
}

func (that *RoomCoordinator) handleChat(cmd chatCmd) {
	room, ok := that.rooms[cmd.roomCode]
	if !ok {
		return
	}

	that.broadcast(room, EventReceivedMessage, ChatRelay{Name: cmd.name, Message: cmd.message})
}

func (that *RoomCoordinator) handleLeave(cmd leaveCmd) {
	log := that.logger.With("method", "handleLeave", "connID", cmd.connID)

	delete(that.sessions, cmd.connID)

	// A connection belongs to at most one room, but the scan over all rooms
	// is kept so a stale association can never leak a player.
	for code, room := range that.rooms {
		if !room.RemovePlayerByConnection(cmd.connID) {
			continue
		}

		if room.IsEmpty() {
			delete(that.rooms, code)
			log.Info("room deleted", "roomCode", code)
		}
	}
}

// finishGame - broadcasts the terminal message. The status flip and archive
// write happen once; the room itself keeps accepting moves, matching the
// original service.
func (that *RoomCoordinator) finishGame(room *entity.Room, message string) {
	that.broadcast(room, EventGameOver, message)

	if room.Finished {
		return
	}
	room.Finished = true

	that.archiveResult(room, message)
}

func (that *RoomCoordinator) archiveResult(room *entity.Room, message string) {
	log := that.logger.With("method", "archiveResult", "roomCode", room.Code)

	names := make([]string, 0, len(room.Players))
	for _, player := range room.Players {
		names = append(names, player.Name)
	}

	record := &entity.GameRecord{
		RoomCode:   room.Code,
		Board:      room.Board,
		Players:    names,
		Result:     message,
		FinishedAt: time.Now().UTC(),
	}

	// Written off the Run loop so a slow store never stalls event handling.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()

		if err := that.archive.Save(ctx, record); err != nil {
			log.Error("failed to archive game result", "error", err)
			return
		}

		log.Info("game result archived")
	}()
}

// broadcast - fans an event out to every connection currently in the room,
// including the one that triggered it.
func (that *RoomCoordinator) broadcast(room *entity.Room, event string, payload any) {
	for _, player := range room.Players {
		session, ok := that.sessions[player.ID]
		if !ok {
			continue
		}

		session.Send(event, payload)
	}
}
