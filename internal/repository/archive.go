package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pixelplayhq/tictactoe-rooms/internal/apperror"
	"github.com/pixelplayhq/tictactoe-rooms/internal/entity"
)

type GameArchive interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetByRoomCode(ctx context.Context, roomCode string) (*entity.GameRecord, error)
	DeleteByRoomCode(ctx context.Context, roomCode string) error
}

type redisArchive struct {
	client *redis.Client
}

// NewGameArchive - stores finished game records in Redis as JSON under
// result:<roomCode> keys. Live rooms are never persisted.
func NewGameArchive(client *redis.Client) GameArchive {
	return &redisArchive{
		client: client,
	}
}

func (that *redisArchive) Save(ctx context.Context, record *entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	recordKey := "result:" + record.RoomCode
	if err = that.client.Set(ctx, recordKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game record: %w", err)
	}

	return nil
}

func (that *redisArchive) GetByRoomCode(ctx context.Context, roomCode string) (*entity.GameRecord, error) {
	recordKey := "result:" + roomCode

	response, err := that.client.Get(ctx, recordKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.GameRecord{}, apperror.ErrResultNotFound
	}

	if err != nil {
		return &entity.GameRecord{}, fmt.Errorf("failed to get game record: %w", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return &entity.GameRecord{}, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

func (that *redisArchive) DeleteByRoomCode(ctx context.Context, roomCode string) error {
	recordKey := "result:" + roomCode

	if err := that.client.Del(ctx, recordKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game record: %w", err)
	}

	return nil
}
