package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MkMuhammetKaradag/uno-backend/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisManager, oda kanallarına olay yayınlar. Her odanın kendi pub/sub
// kanalı vardır: "room:<uuid>".
type RedisManager struct {
	client *redis.Client
}

func NewRedisManager(redisAddr string, password string, db int) (*RedisManager, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	zap.L().Info("connected to redis", zap.String("addr", redisAddr))
	return &RedisManager{client: rdb}, nil
}

func (rm *RedisManager) Close() error {
	return rm.client.Close()
}

func (rm *RedisManager) GetRedisClient() *redis.Client {
	return rm.client
}

func RoomChannel(roomID uuid.UUID) string {
	return fmt.Sprintf("room:%s", roomID.String())
}

// PublishEvent, oyun olayını odanın kanalına yayınlar. Yayın hatası oyun
// akışını durdurmaz, sadece loglanır.
func (rm *RedisManager) PublishEvent(ctx context.Context, event domain.GameEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to marshal game event", zap.Error(err))
		return
	}

	channel := RoomChannel(event.RoomID)
	if err := rm.client.Publish(ctx, channel, payload).Err(); err != nil {
		zap.L().Error("failed to publish game event",
			zap.String("channel", channel),
			zap.String("type", event.Type),
			zap.Error(err))
	}
}
